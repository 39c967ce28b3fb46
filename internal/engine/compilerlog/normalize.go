// Package compilerlog renders raw compiler output as an HTML build log.
package compilerlog

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
)

// MaxMessageLength bounds the length of messages written to the server log.
const MaxMessageLength = 160

const (
	warningMarker = "compiler-WarningMarker"
	errorMarker   = "compiler-ErrorMarker"
)

var diagnostic = regexp.MustCompile(`^(.*?):(\d+):\d+: (error|warning)?:? ?(.*?)$`)

// Normalize strips srcPath from text and renders every line as HTML.
// Diagnostics in generated sources become styled blocks. Diagnostics in any
// other file are dropped together with their indented continuation lines.
// Rendering never fails: if it panics, the stripped text is escaped as is.
func Normalize(text, srcPath string, logger ports.Logger) (out string) {
	stripped := text
	if srcPath != "" {
		stripped = strings.ReplaceAll(text, srcPath, "")
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn(fmt.Sprintf("failed to render compiler output: %v", r))
			out = html.EscapeString(stripped)
		}
	}()

	return render(stripped, logger)
}

func render(text string, logger ports.Logger) string {
	var sb strings.Builder
	skipped := false

	for _, line := range splitLines(text) {
		m := diagnostic.FindStringSubmatch(line)
		if m == nil {
			if strings.HasPrefix(line, "  ") {
				if !skipped {
					sb.WriteString(html.EscapeString(line))
					sb.WriteString("<br>")
				}
				continue
			}
			skipped = false
			sb.WriteString(html.EscapeString(line))
			sb.WriteString("<br>")
			continue
		}

		file, lineNo, severity, msg := m[1], m[2], m[3], m[4]
		kind, marker := "ERROR", errorMarker
		if severity == "warning" {
			kind, marker = "WARNING", warningMarker
		}

		if strings.HasSuffix(file, domain.YailExtension) {
			skipped = false
			fmt.Fprintf(&sb, "<div><span class='%s'>%s</span>: %s line %s: %s</div>",
				marker, kind, html.EscapeString(file), lineNo, html.EscapeString(msg))
		} else {
			skipped = true
		}

		logger.Info(fmt.Sprintf("%s: %s line %s: %s", kind, file, lineNo, truncate(msg)))
	}

	return sb.String()
}

// splitLines splits on newlines and drops trailing empty lines.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func truncate(msg string) string {
	runes := []rune(msg)
	if len(runes) <= MaxMessageLength {
		return msg
	}
	return string(runes[:MaxMessageLength])
}
