// Package prompt provides the interactive front-ends behind
// domain.Prompter: a terminal implementation with masked password input,
// and a scripted implementation that replays fixed responses for tests
// and headless runs.
package prompt
