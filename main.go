package main

import "github.com/tidepool-org/mealplan/api"

func main() {
	api.MainLoop()
}
