// Package swiftmsg implements the SWIFT FIN five-block envelope lexer
// (§4.4.1): it splits a complete FIN message into blocks 1-5, decodes
// blocks 1/2 by fixed offset, blocks 3/5 into ordered nested-tag maps, and
// preserves block 4 verbatim for the MT body parser. It knows nothing
// about message-type-specific tag grammar; that lives in mtparser.
package swiftmsg

import (
	"strings"

	"finfmt/internal/finerr"
)

// Message is the parsed five-block envelope.
type Message struct {
	Block1 Block1
	Block2 Block2
	Block3 []TagPair // ordered, last-occurrence-wins handled by caller via Tag()
	Block4 string    // verbatim text content, CRLF-delimited tag lines
	Block5 []TagPair
}

// TagPair is one nested {tag:value} pair from block 3 or block 5,
// insertion-ordered as encountered.
type TagPair struct {
	Tag   string
	Value string
}

// Tag returns the value of the last occurrence of tag within pairs,
// implementing the "duplicate tags keep the last occurrence" rule.
func Tag(pairs []TagPair, tag string) (string, bool) {
	value, ok := "", false
	for _, p := range pairs {
		if p.Tag == tag {
			value, ok = p.Value, true
		}
	}
	return value, ok
}

// Block1 is the basic header: application id, service id, logical
// terminal address, and the optional session/sequence numbers.
type Block1 struct {
	ApplicationID    string // 1 char
	ServiceID        string // 2 chars
	LogicalTerminal  string // 12 chars
	SessionNumber    string // 4 chars, optional
	SequenceNumber   string // 6+ chars, optional
}

// Block2 is the application header, dispatched on its first character.
type Block2 struct {
	Direction          byte   // 'I' or 'O'
	MessageType        string // 3-digit numeric type
	ReceiverBIC        string // input form
	Priority           string
	DeliveryMonitor    string
	ObsolescencePeriod string
	InputTime          string // output form
	InputDate          string
	MIR                string
	OutputDate         string
	OutputTime         string
}

type lexState int

const (
	stateTopLevel lexState = iota
	stateInBlock
)

// Parse lexes a complete FIN message into its five blocks. A missing
// block 1, 2, or 4 is not itself a Lex error here — callers decide
// mandatory-block policy per message family — but unbalanced braces or a
// missing block-4 end marker ("-}") are fatal Lex errors.
func Parse(text string) (*Message, error) {
	blocks, err := splitBlocks(text)
	if err != nil {
		return nil, err
	}
	msg := &Message{}
	for id, content := range blocks {
		switch id {
		case '1':
			msg.Block1 = parseBlock1(content)
		case '2':
			msg.Block2 = parseBlock2(content)
		case '3':
			msg.Block3 = parseNestedTags(content)
		case '4':
			msg.Block4 = content
		case '5':
			msg.Block5 = parseNestedTags(content)
		}
	}
	return msg, nil
}

// splitBlocks scans top-level {n:...} blocks. Block 4 ends at a literal
// "-}" line rather than a bare "}"; blocks 1/2/3/5 end at the first
// top-level "}". Braces nested inside block 4 (e.g. in a GVC :86: field's
// remittance text) are preserved verbatim and never treated as the block
// terminator.
func splitBlocks(text string) (map[byte]string, error) {
	blocks := make(map[byte]string)
	i := 0
	n := len(text)
	for i < n {
		if text[i] != '{' {
			i++
			continue
		}
		if i+2 >= n || text[i+2] != ':' {
			return nil, finerr.New(finerr.Lex, "", "malformed block header")
		}
		id := text[i+1]
		if id < '1' || id > '5' {
			return nil, finerr.New(finerr.Lex, "", "unknown block id")
		}
		start := i + 3
		if id == '4' {
			end := strings.Index(text[start:], "\r\n-}")
			if end < 0 {
				end = strings.Index(text[start:], "\n-}")
				if end < 0 {
					return nil, finerr.New(finerr.Lex, "block4", "missing end marker -}")
				}
			}
			blocks['4'] = text[start : start+end] // content before the "\r\n-}" / "\n-}" marker
			closeIdx := strings.Index(text[start+end:], "}")
			if closeIdx < 0 {
				return nil, finerr.New(finerr.Lex, "block4", "unbalanced braces")
			}
			i = start + end + closeIdx + 1
			continue
		}
		depth := 1
		j := start
		for j < n && depth > 0 {
			switch text[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}
		if depth != 0 {
			return nil, finerr.New(finerr.Lex, "", "unbalanced braces")
		}
		blocks[id] = text[start : j-1]
		i = j
	}
	return blocks, nil
}

func parseBlock1(s string) Block1 {
	b := Block1{}
	if len(s) >= 1 {
		b.ApplicationID = s[0:1]
	}
	if len(s) >= 3 {
		b.ServiceID = s[1:3]
	}
	if len(s) >= 15 {
		b.LogicalTerminal = s[3:15]
	}
	if len(s) >= 19 {
		b.SessionNumber = s[15:19]
	}
	if len(s) >= 25 {
		b.SequenceNumber = s[19:25]
	}
	return b
}

func parseBlock2(s string) Block2 {
	b := Block2{}
	if len(s) == 0 {
		return b
	}
	b.Direction = s[0]
	switch b.Direction {
	case 'I':
		if len(s) >= 4 {
			b.MessageType = s[1:4]
		}
		if len(s) >= 16 {
			b.ReceiverBIC = s[4:16]
		}
		if len(s) >= 17 {
			b.Priority = s[16:17]
		}
		if len(s) >= 18 {
			b.DeliveryMonitor = s[17:18]
		}
		if len(s) >= 21 {
			b.ObsolescencePeriod = s[18:21]
		}
	case 'O':
		if len(s) >= 4 {
			b.MessageType = s[1:4]
		}
		if len(s) >= 8 {
			b.InputTime = s[4:8]
		}
		if len(s) >= 14 {
			b.InputDate = s[8:14]
		}
		if len(s) >= 42 {
			b.MIR = s[14:42]
		}
		if len(s) >= 48 {
			b.OutputDate = s[42:48]
		}
		if len(s) >= 54 {
			b.OutputTime = s[48:54]
		}
		if len(s) >= 55 {
			b.Priority = s[54:55]
		}
	}
	return b
}

// parseNestedTags parses a sequence of {tag:value} pairs into an
// insertion-ordered slice, preserving every occurrence; callers select
// the last one via Tag() per the duplicate-tag rule.
func parseNestedTags(s string) []TagPair {
	var pairs []TagPair
	i := 0
	n := len(s)
	for i < n {
		if s[i] != '{' {
			i++
			continue
		}
		colon := strings.IndexByte(s[i:], ':')
		if colon < 0 {
			break
		}
		tag := s[i+1 : i+colon]
		valStart := i + colon + 1
		closeIdx := strings.IndexByte(s[valStart:], '}')
		if closeIdx < 0 {
			break
		}
		value := s[valStart : valStart+closeIdx]
		pairs = append(pairs, TagPair{Tag: tag, Value: value})
		i = valStart + closeIdx + 1
	}
	return pairs
}
