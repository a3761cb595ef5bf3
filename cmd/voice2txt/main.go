package main

import (
	"voice2txt/cmd/voice2txt/cmd"
)

func main() {
	cmd.Execute()
}
