// Package agent implements the interactive AI advisor behind `spm assist`.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a portfolio advisor. You are given the current
composition of the user's stock portfolio as a markdown report. Answer
questions about it: concentration, diversification, what a rebalance toward
given targets would mean. You have no live market access; when asked about
anything beyond the report, say so. Keep answers short.`

// Advisor is a chat session about one portfolio.
type Advisor struct {
	w io.Writer
	r *bufio.Reader

	// Model overrides the Gemini model; empty means the default.
	Model string
	// Report is the markdown holding report seeding the conversation.
	Report string

	chat *genai.Chat
}

// New creates an advisor writing responses to 'w' and reading user input
// from 'r'.
func New(w io.Writer, r io.Reader, report string) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r), Report: report}
}

// Start creates the chat session, seeding it with the portfolio report.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	model := a.Model
	if model == "" {
		model = defaultModel
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
				{Text: a.Report},
			},
		},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's text answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// answered before reading from the user. Type 'bye' or Ctrl+D to exit.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to spm assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush queued prompts first, then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
