/*
Command emojis finds, counts and classifies emoji in text.

	emojis scan "I ☕ love coffee"
	echo "Hi ☕!" | emojis replace --with "<emoji>"
	emojis categories smileys
	emojis demojize ☕
	emojis config set favorites.coffee :_hot_beverage_:

Text is taken from the command line arguments or, if there are none, from
standard input. Settings are kept in $HOME/.config/emojis/emojis.toml.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
