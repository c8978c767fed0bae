package billing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TagKind identifies a policy annotation applied to a time entry.
type TagKind string

const (
	TagKindTravel      TagKind = "TRAVEL"
	TagKindInternal    TagKind = "INTERNAL"
	TagKindTeamClamped TagKind = "TEAM_CLAMPED"
)

// displayOrder fixes where each tag sits in the rendered description,
// independent of the order in which the policies were applied.
var displayOrder = map[TagKind]int{
	TagKindTravel:      0,
	TagKindInternal:    1,
	TagKindTeamClamped: 2,
}

type Tag struct {
	Kind  TagKind
	Value int
}

func TagTravel() Tag { return Tag{Kind: TagKindTravel} }
func TagInternal() Tag { return Tag{Kind: TagKindInternal} }

func TagTeamClamped(n int) Tag {
	return Tag{Kind: TagKindTeamClamped, Value: n}
}

// String renders the storage form: "TRAVEL", "INTERNAL", "TEAM_CLAMPED:3".
func (t Tag) String() string {
	if t.Kind == TagKindTeamClamped {
		return fmt.Sprintf("%s:%d", t.Kind, t.Value)
	}
	return string(t.Kind)
}

func ParseTag(s string) (Tag, error) {
	kind, value, hasValue := strings.Cut(s, ":")
	switch TagKind(kind) {
	case TagKindTravel, TagKindInternal:
		if hasValue {
			return Tag{}, fmt.Errorf("tag %s takes no value", kind)
		}
		return Tag{Kind: TagKind(kind)}, nil
	case TagKindTeamClamped:
		n, err := strconv.Atoi(value)
		if !hasValue || err != nil {
			return Tag{}, fmt.Errorf("invalid team clamp tag: %s", s)
		}
		return TagTeamClamped(n), nil
	default:
		return Tag{}, fmt.Errorf("unknown tag: %s", s)
	}
}

// Tags is the ordered record of policies applied while computing an entry.
type Tags []Tag

func (ts Tags) Has(kind TagKind) bool {
	for _, t := range ts {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// Render prefixes text with the tags in display order:
// "[TRAVEL] [INTERNAL] [TEAM_CLAMPED:n] text".
func (ts Tags) Render(text string) string {
	ordered := make(Tags, len(ts))
	copy(ordered, ts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return displayOrder[ordered[i].Kind] < displayOrder[ordered[j].Kind]
	})

	var b strings.Builder
	for _, t := range ordered {
		b.WriteString("[")
		b.WriteString(t.String())
		b.WriteString("] ")
	}
	b.WriteString(text)
	return b.String()
}

func (ts Tags) Strings() []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.String())
	}
	return out
}

func ParseTags(raw []string) (Tags, error) {
	out := make(Tags, 0, len(raw))
	for _, s := range raw {
		t, err := ParseTag(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
