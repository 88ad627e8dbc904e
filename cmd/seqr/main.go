// cmd/seqr/main.go
package main

import (
	"seqr/internal/app"
	"seqr/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
