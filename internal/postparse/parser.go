// Copyright easylive1989, 2026. All rights reserved.

// Package postparse turns an exported note file into a blog post draft:
// page metadata lines are dropped, the tag line is captured, and fenced
// code blocks are lifted out into named snippet files so they can be
// hosted separately and embedded.
package postparse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/easylive1989/noteops/pkg/types"
)

// Post is the parsed draft.
type Post struct {
	Title string
	Tags  []string
	Body  string

	// Snippets maps generated snippet file names (code_NN.ext) to the
	// code lifted out of the body. The body references each snippet by
	// its file name where the fenced block used to be.
	Snippets map[string]string
}

// state classifies the line being read: ordinary text or the inside of a
// fenced code block.
type state int

const (
	stateText state = iota
	stateCode
)

const fence = "```"

// Parser splits exported note files into post drafts.
type Parser struct {
	cfg types.PublishConfig
}

// New builds a parser with the given skip keywords and language map.
func New(cfg types.PublishConfig) *Parser {
	return &Parser{cfg: cfg}
}

// Parse reads an exported note line by line. The first kept line becomes
// the title (with any leading heading marker stripped) and stays in the
// body; a line starting with the tag prefix becomes the tag list and is
// removed from the body.
func (p *Parser) Parse(r io.Reader) (*Post, error) {
	post := &Post{Snippets: map[string]string{}}
	var body strings.Builder
	var snippet strings.Builder
	var snippetName string
	st := stateText

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		switch st {
		case stateText:
			if p.skip(line) {
				continue
			}
			if post.Title == "" && strings.TrimSpace(line) != "" {
				post.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
				body.WriteString(line + "\n")
				continue
			}
			if tagLine, ok := strings.CutPrefix(line, p.cfg.TagPrefix+":"); ok {
				post.Tags = splitTags(tagLine)
				continue
			}
			if rest, ok := strings.CutPrefix(line, fence); ok {
				st = stateCode
				snippetName = p.snippetName(rest, len(post.Snippets))
				snippet.Reset()
				continue
			}
			body.WriteString(line + "\n")

		case stateCode:
			if strings.HasPrefix(line, fence) {
				st = stateText
				post.Snippets[snippetName] = snippet.String()
				body.WriteString(snippetName + "\n")
				continue
			}
			snippet.WriteString(line + "\n")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading note: %w", err)
	}
	if st == stateCode {
		return nil, fmt.Errorf("unterminated code fence (snippet %s)", snippetName)
	}

	post.Body = body.String()
	return post, nil
}

// skip reports whether the line is page metadata to drop.
func (p *Parser) skip(line string) bool {
	for _, kw := range p.cfg.SkipKeywords {
		if strings.HasPrefix(line, kw) {
			return true
		}
	}
	return false
}

// snippetName builds the snippet file name from the fence's language tag
// and the snippet's position in the document.
func (p *Parser) snippetName(language string, index int) string {
	ext, ok := p.cfg.LanguageMap[strings.TrimSpace(language)]
	if !ok || ext == "" {
		ext = "txt"
	}
	return fmt.Sprintf("code_%02d.%s", index, ext)
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
