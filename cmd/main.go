package main

import (
	"school-activities-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
