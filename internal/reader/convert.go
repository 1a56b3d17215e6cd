/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package reader

import (
	"strconv"
	"strings"

	"github.com/yonatan-v/minidocx/domain"
	"github.com/yonatan-v/minidocx/pkg/constants"
)

func attrVal(elem *Element, local string) string {
	v, _ := GetAttr(elem, local)
	return v
}

func parseIntAttr(elem *Element, local string) (int, bool) {
	v, ok := GetAttr(elem, local)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloatAttr(elem *Element, local string) (float64, bool) {
	v, ok := GetAttr(elem, local)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseJustification(val string) domain.Justification {
	switch val {
	case constants.JustificationValueCenter:
		return domain.JustifyCenter
	case constants.JustificationValueRight:
		return domain.JustifyRight
	case constants.JustificationValueJustify:
		return domain.JustifyJustify
	default:
		return domain.JustifyLeft
	}
}

func parseTabStop(tab *Element) domain.TabStop {
	stop := domain.TabStop{Alignment: domain.TabLeft}
	if v, ok := parseFloatAttr(tab, "pos"); ok {
		stop.Position = v / constants.TwipsPerPoint
	}
	if val := attrVal(tab, "val"); val != "" {
		stop.Alignment = domain.TabAlignment(strings.ToUpper(val)[0])
	}
	stop.Leader = attrVal(tab, "leader")
	return stop
}
