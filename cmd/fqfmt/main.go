// cmd/fqfmt/main.go
package main

import (
	"fqfmt/internal/app"
	"fqfmt/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
