package domain

import "strings"

// PermissionPrefix is the namespace of platform permissions.
const PermissionPrefix = "android.permission."

// Storage scopes understood by the scope table.
const (
	ScopeShared = "Shared"
	ScopeLegacy = "Legacy"
)

var scopePermissions = map[string][]string{
	ScopeShared: {
		PermissionPrefix + "READ_MEDIA_AUDIO",
		PermissionPrefix + "READ_MEDIA_IMAGES",
		PermissionPrefix + "READ_MEDIA_VIDEO",
		PermissionPrefix + "READ_EXTERNAL_STORAGE",
		PermissionPrefix + "WRITE_EXTERNAL_STORAGE",
	},
	ScopeLegacy: {
		PermissionPrefix + "READ_EXTERNAL_STORAGE",
		PermissionPrefix + "WRITE_EXTERNAL_STORAGE",
	},
}

// dangerousPermissions are only granted to companion builds on request.
var dangerousPermissions = map[string]struct{}{
	PermissionPrefix + "RECEIVE_SMS":            {},
	PermissionPrefix + "SEND_SMS":               {},
	PermissionPrefix + "READ_SMS":               {},
	PermissionPrefix + "READ_CALL_LOG":          {},
	PermissionPrefix + "WRITE_CALL_LOG":         {},
	PermissionPrefix + "PROCESS_OUTGOING_CALLS": {},
}

// PermissionsForScopes expands storage scopes into platform permissions.
// Unknown scopes contribute nothing.
func PermissionsForScopes(scopes []string) []string {
	seen := make(map[string]struct{})
	var perms []string
	for _, scope := range scopes {
		for _, p := range scopePermissions[scope] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			perms = append(perms, p)
		}
	}
	return perms
}

// IsDangerousPermission reports whether p is withheld from companion builds by default.
func IsDangerousPermission(p string) bool {
	_, ok := dangerousPermissions[p]
	return ok
}

// QualifyPermission turns a short permission name such as "CoarseLocation"
// or "CAMERA" into its fully qualified form. Qualified names are returned as is.
func QualifyPermission(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ".") {
		return name
	}
	if strings.ToUpper(name) == name {
		return PermissionPrefix + name
	}

	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return PermissionPrefix + strings.ToUpper(b.String())
}
