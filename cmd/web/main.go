package main

import "maintdesk_backend/internal/app"

func main() {
	app.Run()
}
