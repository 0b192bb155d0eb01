package completion

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_mailmate_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _mailmate_bash_autocomplete mailmate
`

const zshCompletionScript = `#compdef mailmate

_mailmate() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _mailmate mailmate
`

const fishCompletionScript = `function __mailmate_complete
    set -l cmd (commandline -opc)
    $cmd --generate-shell-completion
end

complete -c mailmate -f -a "(__mailmate_complete)"
`

var scripts = map[string]string{
	"bash": bashCompletionScript,
	"zsh":  zshCompletionScript,
	"fish": fishCompletionScript,
}

func NewCompletionCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     t.GetMessage("completion_command_usage", 0, nil),
		ArgsUsage: "bash|zsh|fish",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shell := cmd.Args().First()
			script, ok := scripts[shell]
			if !ok {
				return fmt.Errorf("%s", t.GetMessage("completion_unsupported_shell", 0, map[string]interface{}{
					"Shell": shell,
				}))
			}
			fmt.Print(script)
			return nil
		},
	}
}
