package main

import "github.com/inovacc/earthinspires/cmd"

func main() {
	cmd.Execute()
}
