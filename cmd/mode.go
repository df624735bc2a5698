package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/util"
)

const (
	choiceBasic    = "Basic version"
	choiceAdvanced = "Advanced version (with resume capability and metadata)"
)

// resolveMode turns "ask" into basic or advanced. Without a terminal it settles on basic.
func resolveMode(mode string) (string, error) {
	if mode != constant.ModeAsk {
		return mode, nil
	}

	if !util.IsInteractive() {
		log.Info("no terminal to ask for a mode, using basic")
		return constant.ModeBasic, nil
	}

	prompt := &survey.Select{
		Message: "Select version",
		Options: []string{choiceBasic, choiceAdvanced},
		Default: choiceBasic,
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}

	if answer == choiceAdvanced {
		return constant.ModeAdvanced, nil
	}
	return constant.ModeBasic, nil
}
