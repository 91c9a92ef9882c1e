package main

import "workreg_backend/internal/app"

func main() {
	app.Run()
}
