package main

import (
	"github.com/SonnyAu/palate-website/app"
)

func main() {
	app.New(nil).Run()
}
