// Package texdoc renders a minimal LaTeX document that includes a single
// image, referenced by its base filename.
package texdoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// documentTemplate has exactly one substitution point, the argument of
// \includegraphics.
const documentTemplate = `\documentclass{article}
\usepackage{graphicx}
\begin{document}
\includegraphics[width=\linewidth]{%s}
\end{document}
`

// Basename returns the part of imagePath after the last path separator,
// or imagePath itself if it has none. Unlike filepath.Base, trailing
// separators are not stripped, so "dir/" yields "".
func Basename(imagePath string) string {
	i := strings.LastIndexFunc(imagePath, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	})
	return imagePath[i+1:]
}

// Render returns the document with name substituted verbatim. The name is
// not escaped for LaTeX.
func Render(name string) string {
	return fmt.Sprintf(documentTemplate, name)
}

// Emit writes the document for imagePath to w, followed by a trailing
// newline.
func Emit(w io.Writer, imagePath string) error {
	name := Basename(imagePath)
	logrus.Debugf("embedding %q as %q", imagePath, name)

	if _, err := fmt.Fprintln(w, Render(name)); err != nil {
		return fmt.Errorf("cannot write document: %w", err)
	}
	return nil
}
