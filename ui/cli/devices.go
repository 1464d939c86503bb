// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/wondertext/wondertext/internal/i18n"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy [text...]",
		Short: "Copy text to the system clipboard",
		Long:  "Copies text to the system clipboard." + inputHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			if err := a.clipboard.WriteAll(text); err != nil {
				return errors.New(i18n.T("notice.copy_failed", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.copied", utf8.RuneCountInString(text)))
			return nil
		},
	}
}

func newPasteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paste",
		Short: "Print the system clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.clipboard.ReadAll()
			if err != nil {
				return errors.New(i18n.T("notice.paste_failed", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newSpeakCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "speak [text...]",
		Short: "Read text aloud",
		Long: `Reads text aloud with the configured speech program (speech.command),
or the first of espeak-ng, espeak, say and spd-say found on PATH. The
command waits until speech has finished; an interrupt stops it.` + inputHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			sp := a.speaker()
			if sp == nil {
				return errors.New(i18n.T("notice.speak_unsupported"))
			}
			done, err := sp.Speak(cmd.Context(), text)
			if err != nil {
				return errors.New(i18n.T("notice.speak_failed", err))
			}
			if err := <-done; err != nil {
				return errors.New(i18n.T("notice.speak_failed", err))
			}
			return nil
		},
	}
}
