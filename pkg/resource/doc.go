// Package resource reads files bundled into the binary with go:embed, or any
// other fs.FS, and reports the build metadata of the running program.
//
//	//go:embed templates/*
//	var templates embed.FS
//
//	body, err := resource.Text(templates, "templates/welcome.txt")
//	err = resource.Save(templates, "templates/logo.png", "/tmp/logo.png")
//
// Text decodes UTF-8 by default and strips a leading byte order mark.
// TextEncoded accepts any golang.org/x/text encoding.
package resource
