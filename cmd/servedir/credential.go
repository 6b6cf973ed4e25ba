package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Generate a basic-auth credential interactively",
	Long: `Prompt for a username and password and print the credential in the
forms servedir accepts: the --auth flag value, the SERVEDIR_AUTH_CREDENTIAL
environment value, and a config.yaml snippet.`,
	RunE: runCredential,
}

func init() {
	rootCmd.AddCommand(credentialCmd)
}

func runCredential(cmd *cobra.Command, args []string) error {
	userPrompt := promptui.Prompt{
		Label: "Username",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("username is required")
			}
			if strings.Contains(input, ":") {
				return errors.New("username must not contain ':'")
			}
			return nil
		},
	}
	username, err := userPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	passPrompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("password is required")
			}
			return nil
		},
	}
	password, err := passPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	credential := username + ":" + password
	token := base64.StdEncoding.EncodeToString([]byte(credential))

	snippet, err := yaml.Marshal(map[string]any{
		"auth": map[string]string{"credential": credential},
	})
	if err != nil {
		return fmt.Errorf("marshal config snippet: %w", err)
	}

	fmt.Printf("Flag:        --auth %q\n", credential)
	fmt.Printf("Environment: SERVEDIR_AUTH_CREDENTIAL=%q\n", credential)
	fmt.Printf("Header:      Authorization: Basic %s\n", token)
	fmt.Printf("\nconfig.yaml snippet:\n%s", snippet)

	return nil
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return fmt.Errorf("prompt: %w", err)
}
