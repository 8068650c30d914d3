package main

import (
	"portalchat/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
