// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package header renders a color table as the stdColors.h C header.
// The output is deterministic: the same table always renders to the same bytes.
package header

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"text/template"

	"github.com/matt-FFFFFF/stdcolors/internal/colortable"
)

const (
	// GuardSymbol is the include guard macro of the generated header.
	GuardSymbol  = "_STD_COLORS_H_"
	// RowIndent prefixes every row of the array literal.
	RowIndent    = "    "
	rowSeparator = ",\n"
)

// ErrRender is returned when the header cannot be written.
var ErrRender = errors.New("failed to render header")

var headerTemplate = template.Must(template.New("stdColors.h").Parse(`#ifndef {{.Guard}}
#define {{.Guard}}

// Values taken from http://cgit.freedesktop.org/xorg/app/rgb/tree/rgb.txt
// Names must be all lowercase, names which are missing spaces are taken out

typedef struct {
    char* name;
    unsigned long pixelValue;
} StdColorEntry;

static const StdColorEntry STANDARD_COLORS[] = {
{{.Rows}}
};

#define NUM_STANDARD_COLORS (sizeof(STANDARD_COLORS) / sizeof(STANDARD_COLORS[0]))

#endif /* {{.Guard}} */
`))

type templateData struct {
	Guard string
	Rows  string
}

// Rows formats the table entries as array initializer rows.
// Values are aligned one column past the longest name and every row but the
// last is followed by a comma and a line break.
func Rows(t *colortable.Table) string {
	entries := t.Entries()
	maxLen := t.MaxNameLen()

	sb := strings.Builder{}

	for i, e := range entries {
		if i > 0 {
			sb.WriteString(rowSeparator)
		}

		sb.WriteString(RowIndent)
		sb.WriteString(`{"`)
		sb.WriteString(e.Name)
		sb.WriteString(`",`)
		sb.WriteString(strings.Repeat(" ", maxLen-len(e.Name)+1))
		sb.WriteString(e.Value.Literal())
		sb.WriteString("}")
	}

	return sb.String()
}

// Render writes the complete header for the table to w.
func Render(w io.Writer, t *colortable.Table) error {
	if err := headerTemplate.Execute(w, templateData{
		Guard: GuardSymbol,
		Rows:  Rows(t),
	}); err != nil {
		return errors.Join(ErrRender, err)
	}

	return nil
}

// Bytes returns the rendered header.
func Bytes(t *colortable.Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Render(buf, t); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
