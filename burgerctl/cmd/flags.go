package main

import "github.com/urfave/cli/v2"

const (
	flagEmail      = "email"
	flagFile       = "file"
	flagFollow     = "follow"
	flagIngredient = "ingredient"
	flagName       = "name"
	flagOutput     = "output"
	flagPassword   = "password"
	flagToken      = "token"
)

var cliFlagOutput = &cli.StringFlag{
	Name:    flagOutput,
	Aliases: []string{"o"},
	Usage: "Return output in another format. Supported formats: table, " +
		"yaml, json",
	Value: "table",
}
