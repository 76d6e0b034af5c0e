package main

import "github.com/OriDaer/Portfolio/internal/app"

func main() {
	app.Run()
}
