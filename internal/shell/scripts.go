// Package shell provides the shell-integration scripts printed by
// `gsw activate`. Each script hooks directory changes to run `gsw auto`,
// which is a benign no-op outside repositories and in repositories without
// a .gswitch file, so the hook is safe to fire on every cd.
package shell

import (
	"errors"
	"fmt"
)

// ErrUnsupported indicates a shell gsw has no integration script for.
var ErrUnsupported = errors.New("unsupported shell")

// Supported lists the shells Script accepts.
var Supported = []string{"bash", "zsh", "fish", "nushell"}

const bashScript = `_gsw_auto_switch() {
    if command -v gsw >/dev/null 2>&1; then
        gsw auto 2>/dev/null
    fi
}

case "$-" in
    *i*)
        _gsw_original_cd=$(declare -f cd)
        cd() {
            builtin cd "$@" && _gsw_auto_switch
        }
        _gsw_auto_switch
        ;;
esac`

const zshScript = `_gsw_auto_switch() {
    if command -v gsw >/dev/null 2>&1; then
        gsw auto 2>/dev/null
    fi
}

case "$-" in
    *i*)
        autoload -U add-zsh-hook
        add-zsh-hook chpwd _gsw_auto_switch
        _gsw_auto_switch
        ;;
esac`

const fishScript = `function _gsw_auto_switch --on-variable PWD
    if command -v gsw >/dev/null 2>&1
        gsw auto 2>/dev/null
    end
end
_gsw_auto_switch`

const nushellScript = `def _gsw_auto_switch [] {
    if (which gsw | is-not-empty) {
        try { gsw auto } | ignore
    }
}

$env.config = ($env.config | upsert hooks {
    env_change: {
        PWD: [{ _gsw_auto_switch }]
    }
})

_gsw_auto_switch`

// Script returns the integration script for the named shell.
func Script(name string) (string, error) {
	switch name {
	case "bash":
		return bashScript, nil
	case "zsh":
		return zshScript, nil
	case "fish":
		return fishScript, nil
	case "nushell":
		return nushellScript, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, name)
}
