package main

import "recs-data/internal/cli"

func main() {
	cli.Execute()
}
