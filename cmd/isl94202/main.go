// cmd/isl94202/main.go
package main

import "isl94202-go/cmd/isl94202/cmd"

func main() {
	cmd.Execute()
}
