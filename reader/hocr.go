package reader

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
)

// HOCRMethod names word sources read from hOCR
const HOCRMethod = "hocr"

// ReadHOCR parses hOCR output. Each ocr_page element becomes a page whose
// dimensions come from its bbox; each ocrx_word element becomes a word.
// x_wconf (0-100) is rescaled to [0,1] and x_fsize gives the font size.
// Documents declaring a non-UTF-8 charset are decoded as ISO-8859-1.
func ReadHOCR(r io.Reader) ([]layout.PageInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read hOCR: %w", err)
	}

	if enc := declaredCharset(data); enc != "" && enc != "utf-8" && enc != "utf8" {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", enc, err)
		}
		data = decoded
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	set := newPageSet()
	position := 0

	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			position++
			number, src := hocrPage(n, position)
			set.add(number, src)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	pages := set.inputs()
	if len(pages) == 0 {
		return nil, fmt.Errorf("no ocr_page elements in hOCR: %w", ErrNoPages)
	}
	return pages, nil
}

// hocrPage reads one ocr_page element. The page number comes from
// ppageno (zero-based) when present, else from the page's position.
func hocrPage(n *html.Node, position int) (int, model.WordSource) {
	props := ParseTitle(attr(n, "title"))
	src := model.WordSource{Method: HOCRMethod}

	var originX, originY float64
	if box, ok := titleBox(props); ok {
		originX, originY = box.X, box.Y
		src.Width, src.Height = box.Width, box.Height
	}

	number := position
	if v, ok := props["ppageno"]; ok && len(v) > 0 {
		if p, err := strconv.Atoi(v[0]); err == nil && p >= 0 {
			number = p + 1
		}
	}

	var findWords func(*html.Node)
	findWords = func(c *html.Node) {
		if c.Type == html.ElementNode && hasClass(c, "ocrx_word") {
			if w, ok := hocrWord(c, originX, originY); ok {
				src.Words = append(src.Words, w)
			}
			return
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			findWords(k)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		findWords(c)
	}

	return number, src
}

func hocrWord(n *html.Node, originX, originY float64) (model.Word, bool) {
	props := ParseTitle(attr(n, "title"))
	box, ok := titleBox(props)
	if !ok {
		return model.Word{}, false
	}

	w := model.Word{
		Text:       strings.TrimSpace(textContent(n)),
		Rect:       model.NewRectangle(box.X-originX, box.Y-originY, box.Width, box.Height),
		Confidence: 1,
	}
	if v, ok := props["x_wconf"]; ok && len(v) > 0 {
		if conf, err := strconv.ParseFloat(v[0], 64); err == nil {
			w.Confidence = conf / 100
		}
	}
	if v, ok := props["x_fsize"]; ok && len(v) > 0 {
		if size, err := strconv.ParseFloat(v[0], 64); err == nil {
			w.FontSize = size
		}
	}
	if v, ok := props["x_font"]; ok && len(v) > 0 {
		w.FontFamily = strings.Trim(strings.Join(v, " "), `"`)
	}
	return w, true
}

// ParseTitle breaks an hOCR title attribute into its properties.
// "bbox 100 200 300 400; x_wconf 95" gives
// {"bbox": ["100","200","300","400"], "x_wconf": ["95"]}.
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		items := strings.Fields(part)
		if len(items) > 0 {
			result[items[0]] = items[1:]
		}
	}
	return result
}

// titleBox converts a bbox property (x1 y1 x2 y2) to a rectangle
func titleBox(props map[string][]string) (model.Rectangle, bool) {
	v, ok := props["bbox"]
	if !ok || len(v) < 4 {
		return model.Rectangle{}, false
	}
	var c [4]float64
	for i := range c {
		f, err := strconv.ParseFloat(v[i], 64)
		if err != nil {
			return model.Rectangle{}, false
		}
		c[i] = f
	}
	return model.NewRectangleFromPoints(
		model.Point{X: c[0], Y: c[1]},
		model.Point{X: c[2], Y: c[3]},
	), true
}

// declaredCharset finds a charset= declaration near the top of the
// document, lower-cased, or "" if there is none
func declaredCharset(data []byte) string {
	head := strings.ToLower(string(data[:min(len(data), 2048)]))
	i := strings.Index(head, "charset=")
	if i < 0 {
		return ""
	}
	rest := head[i+len("charset="):]
	rest = strings.TrimLeft(rest, `"'`)
	end := strings.IndexAny(rest, `"'; />`)
	if end < 0 {
		end = len(rest)
	}
	return rest[:end]
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return sb.String()
}
