package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// GEDCOM line shape: LEVEL [@XREF@] TAG [VALUE]
var linePattern = regexp.MustCompile(`^\s*(\d+)\s+(?:(@[^@]+@)\s+)?(\S+)(?:\s+(.*))?$`)

type rawLine struct {
	num   int // source line number, 1-based
	level int
	xref  string
	tag   string
	value string
}

type xrefAt struct {
	xref string
	line int
}

// ParseFile reads and parses a GEDCOM file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gedcom file: %w", err)
	}
	defer f.Close()

	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return parsed, nil
}

// Parse builds the record graph from GEDCOM source. It collects individual
// and family records in a first pass, then resolves cross-references; a
// reference to a missing record is a hard error (the malformed-relationship
// contract of the graph boundary). Events whose DATE line cannot be resolved
// are treated as having no date.
func Parse(r io.Reader) (*File, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	file := &File{
		indiByXref: make(map[string]*Individual),
		famByXref:  make(map[string]*Family),
	}

	// Pending links, resolved after all records are collected.
	type famLinks struct {
		fam  *Family
		husb *xrefAt
		wife *xrefAt
		chil []xrefAt
	}
	var pending []famLinks

	for start := 0; start < len(lines); {
		if lines[start].level != 0 {
			start++
			continue
		}
		end := start + 1
		for end < len(lines) && lines[end].level != 0 {
			end++
		}
		record := lines[start:end]
		head := record[0]

		switch head.tag {
		case "INDI":
			indi := &Individual{Xref: head.xref, Line: head.num}
			parseIndividual(indi, record[1:])
			file.Individuals = append(file.Individuals, indi)
			if _, dup := file.indiByXref[indi.Xref]; !dup {
				file.indiByXref[indi.Xref] = indi
			}
		case "FAM":
			fam := &Family{Xref: head.xref, Line: head.num}
			links := famLinks{fam: fam}
			for j := 0; j < len(record[1:]); j++ {
				sub := record[1:][j]
				if sub.level != 1 {
					continue
				}
				switch sub.tag {
				case "HUSB":
					links.husb = &xrefAt{trimXref(sub.value), sub.num}
				case "WIFE":
					links.wife = &xrefAt{trimXref(sub.value), sub.num}
				case "CHIL":
					links.chil = append(links.chil, xrefAt{trimXref(sub.value), sub.num})
				case "MARR":
					fam.Marriage = eventDate(record[1:], j)
				case "DIV":
					fam.Divorce = eventDate(record[1:], j)
				}
			}
			file.Families = append(file.Families, fam)
			if _, dup := file.famByXref[fam.Xref]; !dup {
				file.famByXref[fam.Xref] = fam
			}
			pending = append(pending, links)
		}
		start = end
	}

	// Resolve family membership from the FAM side.
	for _, links := range pending {
		if links.husb != nil {
			husb, ok := file.indiByXref[links.husb.xref]
			if !ok {
				return nil, fmt.Errorf("line %d: family %s references unknown husband %s",
					links.husb.line, links.fam.Xref, links.husb.xref)
			}
			links.fam.Husband = husb
			husb.SpouseIn = append(husb.SpouseIn, links.fam)
		}
		if links.wife != nil {
			wife, ok := file.indiByXref[links.wife.xref]
			if !ok {
				return nil, fmt.Errorf("line %d: family %s references unknown wife %s",
					links.wife.line, links.fam.Xref, links.wife.xref)
			}
			links.fam.Wife = wife
			wife.SpouseIn = append(wife.SpouseIn, links.fam)
		}
		for _, c := range links.chil {
			child, ok := file.indiByXref[c.xref]
			if !ok {
				return nil, fmt.Errorf("line %d: family %s references unknown child %s",
					c.line, links.fam.Xref, c.xref)
			}
			links.fam.Children = append(links.fam.Children, child)
			child.ChildOf = append(child.ChildOf, links.fam)
		}
	}

	return file, nil
}

func parseIndividual(indi *Individual, body []rawLine) {
	for j := 0; j < len(body); j++ {
		sub := body[j]
		if sub.level != 1 {
			continue
		}
		switch sub.tag {
		case "NAME":
			if indi.Name == "" {
				indi.Name = sub.value
			}
		case "SEX":
			switch strings.ToUpper(strings.TrimSpace(sub.value)) {
			case "M":
				indi.Sex = SexMale
			case "F":
				indi.Sex = SexFemale
			}
		case "BIRT":
			indi.Birth = eventDate(body, j)
		case "DEAT":
			indi.Death = eventDate(body, j)
		}
	}
}

// eventDate finds the DATE sub-line of the event at body[idx] and resolves
// it. Returns nil when the event has no date or the date does not parse.
func eventDate(body []rawLine, idx int) *Date {
	eventLevel := body[idx].level
	for j := idx + 1; j < len(body) && body[j].level > eventLevel; j++ {
		if body[j].tag != "DATE" || body[j].level != eventLevel+1 {
			continue
		}
		d, err := ParseDate(body[j].value, body[j].num)
		if err != nil {
			return nil
		}
		return &d
	}
	return nil
}

func scanLines(r io.Reader) ([]rawLine, error) {
	var lines []rawLine
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		m := linePattern.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed gedcom line %q", num, text)
		}
		level, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid level %q", num, m[1])
		}
		lines = append(lines, rawLine{
			num:   num,
			level: level,
			xref:  trimXref(m[2]),
			tag:   m[3],
			value: strings.TrimSpace(m[4]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read gedcom source: %w", err)
	}
	return lines, nil
}

func trimXref(s string) string {
	return strings.Trim(strings.TrimSpace(s), "@")
}
