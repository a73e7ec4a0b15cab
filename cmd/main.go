package main

import (
	api "minisocial"
)

func main() {
	api.Run()
}
