package main

import (
	"os"

	"github.com/y-hirakaw/calc/internal/cli"
)

// exitFunc はテストで差し替えられるよう変数にしている
var exitFunc = os.Exit

// main はアプリケーションのエントリーポイント
func main() {
	app := cli.NewApp()
	exitFunc(app.Run(os.Args))
}
