package main

import "lab-website-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
