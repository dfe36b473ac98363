// Command bufsafe generates tagged synthetic C programs for buffer-safety classifiers.
package main

import "github.com/mouse-blink/bufsafe/cmd"

func main() {
	cmd.Execute()
}
