package main

import "github.com/tidepool-org/mealplan/cmd/mealplan-tool/command"

func main() {
	command.Execute()
}
