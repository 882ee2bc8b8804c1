package ruleset

// file mirrors the top-level YAML document.
type file struct {
	Definitions map[string]defNode  `yaml:"definitions"`
	Rules       map[string]ruleNode `yaml:"rules"`
	Passes      []passNode          `yaml:"passes"`
}

// defNode declares a token definition, either inline through exactly
// one of the value/pattern/class/expr forms, or by naming a definition
// declared under the document's definitions key.
type defNode struct {
	Name    string  `yaml:"name"`
	Value   *string `yaml:"value"`
	Pattern *string `yaml:"pattern"`
	Class   *string `yaml:"class"`
	Expr    *string `yaml:"expr"`
}

func (n *defNode) forms() []string {
	var fs []string
	if n.Value != nil {
		fs = append(fs, "value")
	}
	if n.Pattern != nil {
		fs = append(fs, "pattern")
	}
	if n.Class != nil {
		fs = append(fs, "class")
	}
	if n.Expr != nil {
		fs = append(fs, "expr")
	}
	return fs
}

// ruleNode declares a rule through exactly one form.
type ruleNode struct {
	Value      *string       `yaml:"value"`
	Pattern    *string       `yaml:"pattern"`
	Def        *string       `yaml:"def"`
	Any        bool          `yaml:"any"`
	Never      bool          `yaml:"never"`
	Sequence   []ruleNode    `yaml:"sequence"`
	AnyOf      []ruleNode    `yaml:"anyOf"`
	Repeat     *repeatNode   `yaml:"repeat"`
	Optional   *ruleNode     `yaml:"optional"`
	Boundary   *boundaryNode `yaml:"boundary"`
	StartOf    *string       `yaml:"startOf"`
	EndOf      *string       `yaml:"endOf"`
	Ref        *refNode      `yaml:"ref"`
	Capture    *captureNode  `yaml:"capture"`
	Lookahead  *ruleNode     `yaml:"lookahead"`
	Lookbehind *ruleNode     `yaml:"lookbehind"`
	Not        *ruleNode     `yaml:"not"`
}

func (n *ruleNode) forms() []string {
	var fs []string
	add := func(name string, set bool) {
		if set {
			fs = append(fs, name)
		}
	}
	add("value", n.Value != nil)
	add("pattern", n.Pattern != nil)
	add("def", n.Def != nil)
	add("any", n.Any)
	add("never", n.Never)
	add("sequence", len(n.Sequence) > 0)
	add("anyOf", len(n.AnyOf) > 0)
	add("repeat", n.Repeat != nil)
	add("optional", n.Optional != nil)
	add("boundary", n.Boundary != nil)
	add("startOf", n.StartOf != nil)
	add("endOf", n.EndOf != nil)
	add("ref", n.Ref != nil)
	add("capture", n.Capture != nil)
	add("lookahead", n.Lookahead != nil)
	add("lookbehind", n.Lookbehind != nil)
	add("not", n.Not != nil)
	return fs
}

// repeatNode bounds a sub-rule. A missing max means unbounded, as does
// an explicit -1.
type repeatNode struct {
	Rule ruleNode `yaml:"rule"`
	Min  int      `yaml:"min"`
	Max  *int     `yaml:"max"`
}

type boundaryNode struct {
	Start   ruleNode `yaml:"start"`
	Between ruleNode `yaml:"between"`
	End     ruleNode `yaml:"end"`
}

// refNode resolves a context key at match time. Type is one of rule,
// tokens, or dynamic; dynamic is the default.
type refNode struct {
	Key  string `yaml:"key"`
	Type string `yaml:"type"`
}

type captureNode struct {
	Key  string   `yaml:"key"`
	Rule ruleNode `yaml:"rule"`
}

// passNode names a rewrite pass. The rule comes either from use (a
// named rule) or inline from rule, never both. A missing action means
// identity.
type passNode struct {
	Name   string      `yaml:"name"`
	Use    string      `yaml:"use"`
	Rule   *ruleNode   `yaml:"rule"`
	Action *actionNode `yaml:"action"`
}

// actionNode declares an action through exactly one form.
type actionNode struct {
	Identity bool           `yaml:"identity"`
	Group    *groupNode     `yaml:"group"`
	Wrap     *wrapNode      `yaml:"wrap"`
	Annotate map[string]any `yaml:"annotate"`
	Index    *indexNode     `yaml:"index"`
	Skip     *defNode       `yaml:"skip"`
	Filter   *defNode       `yaml:"filter"`
	Split    *splitNode     `yaml:"split"`
	Join     *joinNode      `yaml:"join"`
}

func (n *actionNode) forms() []string {
	var fs []string
	add := func(name string, set bool) {
		if set {
			fs = append(fs, name)
		}
	}
	add("identity", n.Identity)
	add("group", n.Group != nil)
	add("wrap", n.Wrap != nil)
	add("annotate", len(n.Annotate) > 0)
	add("index", n.Index != nil)
	add("skip", n.Skip != nil)
	add("filter", n.Filter != nil)
	add("split", n.Split != nil)
	add("join", n.Join != nil)
	return fs
}

type groupNode struct {
	Mode string  `yaml:"mode"`
	Def  defNode `yaml:"def"`
}

type wrapNode struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

type indexNode struct {
	Start int `yaml:"start"`
}

type splitNode struct {
	Pattern string `yaml:"pattern"`
}

type joinNode struct {
	Delimiter string `yaml:"delimiter"`
}
