package commands

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/buildserver/internal/app"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/ui/output"
	"go.trai.ch/buildserver/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <archive>",
		Short: "Build a package from a project archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			out, _ := cmd.Flags().GetString("out")
			formatTag, _ := cmd.Flags().GetString("format")
			outputName, _ := cmd.Flags().GetString("output-name")
			user, _ := cmd.Flags().GetString("user")
			companion, _ := cmd.Flags().GetBool("companion")
			emulator, _ := cmd.Flags().GetBool("emulator")
			dangerous, _ := cmd.Flags().GetBool("dangerous-permissions")
			extensions, _ := cmd.Flags().GetStringArray("ext")
			ram, _ := cmd.Flags().GetInt("ram")
			dexCache, _ := cmd.Flags().GetString("dex-cache")
			logFile, _ := cmd.Flags().GetString("log-file")

			format, err := domain.ParsePackageFormat(formatTag)
			if err != nil {
				return err
			}

			result := c.app.Build(cmd.Context(), app.BuildRequest{
				ConfigPath:           configPath,
				UserName:             user,
				ArchivePath:          args[0],
				OutputDir:            out,
				OutputName:           outputName,
				Companion:            companion,
				Emulator:             emulator,
				DangerousPermissions: dangerous,
				ExtraTypes:           extensions,
				ChildProcessRAM:      ram,
				DexCachePath:         dexCache,
				Format:               format,
			})

			if logFile != "" {
				//nolint:gosec // Log file path is provided by the operator
				if err := os.WriteFile(logFile, []byte(result.Log), domain.FilePerm); err != nil {
					return zerr.With(zerr.Wrap(err, "failed to write build log"), "path", logFile)
				}
			}

			w := cmd.OutOrStdout()
			if result.UserMessage != "" {
				_, _ = fmt.Fprintln(w, result.UserMessage)
			}
			if !result.Success {
				styled := output.New(w)
				_, _ = fmt.Fprintln(w, styled.String(style.Cross+" build "+result.BuildID+" failed").
					Foreground(termenv.RGBColor(string(style.Red))))
				return zerr.With(zerr.Wrap(domain.ErrBuildFailed, result.UserMessage), "build_id", result.BuildID)
			}

			if result.Artifacts.Package != "" {
				_, _ = fmt.Fprintf(w, "package: %s (%s)\n", result.Artifacts.Package, result.Artifacts.PackageDigest)
			}
			if result.Artifacts.Keystore != "" {
				_, _ = fmt.Fprintf(w, "keystore: %s\n", result.Artifacts.Keystore)
			}
			styled := output.New(w)
			_, _ = fmt.Fprintln(w, styled.String(style.Check+" build "+result.BuildID+" succeeded").
				Foreground(termenv.RGBColor(string(style.Green))))
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", ".", "Directory receiving the package and a generated keystore")
	cmd.Flags().StringP("format", "f", string(domain.FormatAPK), "Package format: apk or aab")
	cmd.Flags().String("output-name", "", "File name of the package, defaults to <project>.<format>")
	cmd.Flags().StringP("user", "u", "", "User name embedded in a generated keystore")
	cmd.Flags().Bool("companion", false, "Build the companion app with every component")
	cmd.Flags().Bool("emulator", false, "Keep x86 native libraries for emulators")
	cmd.Flags().Bool("dangerous-permissions", false, "Keep dangerous permissions in companion builds")
	cmd.Flags().StringArray("ext", nil, "Extension component type to include (repeatable)")
	cmd.Flags().Int("ram", 0, "Memory ceiling of child processes in MB, overrides the settings")
	cmd.Flags().String("dex-cache", "", "Dex cache directory, overrides the settings")
	cmd.Flags().String("log-file", "", "Write the rendered build log to this file")
	return cmd
}
