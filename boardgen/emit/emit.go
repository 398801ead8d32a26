// Package emit renders a validated board definition into the source files of
// its board support package. The transform is pure: one definition in, one
// deterministic set of formatted files out, byte-identical across runs.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"boardcode-go/boardgen/board"
	"boardcode-go/boardgen/feature"
	"boardcode-go/boardgen/variant"
	"boardcode-go/x/strx"
)

// File is one rendered source file.
type File struct {
	Name string
	Data []byte
}

const genHeader = "// Code generated by boardgen; DO NOT EDIT.\n\n"

// scope is the build-tag context a group of alias entries shares: an
// optional capability gate and an optional variant restriction.
type scope struct {
	cap      string   // capability name, "" when ungated
	variants []string // restriction tags, nil for all board fits
	pins     []board.PinEntry
	periphs  []board.PeriphEntry
}

func (s *scope) base() bool { return s.cap == "" && len(s.variants) == 0 }

// grouped reports whether the scope extends the bundle with an alias group.
// Only unrestricted capability scopes do; variant-restricted aliases stay
// package-level names, since the bundle's shape cannot vary per fit.
func (s *scope) grouped() bool { return s.cap != "" && len(s.variants) == 0 }

// Generate validates def and renders its board package.
func Generate(def *board.Definition) ([]File, error) {
	if err := board.Validate(def); err != nil {
		return nil, err
	}
	caps, err := board.Caps(def)
	if err != nil {
		return nil, err
	}

	g := &gen{
		def:    def,
		caps:   caps,
		pkg:    strx.Coalesce(def.Package, def.Board),
		prefix: strx.Coalesce(def.TagPrefix, def.Board),
	}
	g.anyVariant = strings.Join(def.Variants, " || ")

	type render struct {
		name string
		src  string
	}
	var todo []render

	todo = append(todo, render{"doc.go", g.docFile()})
	for _, tag := range def.Variants {
		v, _ := variant.ByTag(tag)
		todo = append(todo, render{"variant_" + tag + ".go", g.variantFile(v)})
	}
	todo = append(todo, render{"variant_guard.go", g.variantGuardFile()})
	if len(def.Variants) > 1 {
		todo = append(todo, render{"variant_conflict.go", g.variantConflictFile()})
	}
	for _, name := range caps.Names() {
		c, _ := caps.Get(name)
		for _, req := range c.Requires {
			rc, _ := caps.Get(req)
			todo = append(todo, render{"guard_" + c.Tag + "_" + rc.Tag + ".go", g.featureGuardFile(c, rc)})
		}
	}
	if caps.Enabled("dma") {
		todo = append(todo, render{"dma.go", g.dmaFile(false)})
		if caps.Enabled("max-channels") {
			todo = append(todo, render{"dma_maxchan.go", g.dmaFile(true)})
		}
	}
	for _, s := range g.scopes() {
		if len(s.pins) == 0 && !s.grouped() {
			// Base-scope peripherals live in the bundle only.
			continue
		}
		todo = append(todo, render{g.pinsFileName(s), g.pinsFile(s)})
	}
	if modes := g.usedModes(); len(modes) > 0 {
		todo = append(todo, render{"pinmodes.go", g.pinmodesFile(modes)})
	}
	todo = append(todo, render{"board.go", g.boardFile()})

	files := make([]File, 0, len(todo))
	for _, r := range todo {
		data, err := format.Source([]byte(r.src))
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", r.name, err)
		}
		files = append(files, File{Name: r.name, Data: data})
	}
	return files, nil
}

type gen struct {
	def        *board.Definition
	caps       feature.Caps
	pkg        string
	prefix     string
	anyVariant string
}

func (g *gen) capTag(name string) string {
	c, _ := g.caps.Get(name)
	return g.prefix + "_" + c.Tag
}

// scopes partitions the alias table by (capability, restriction), base scope
// first, then first-appearance order.
func (g *gen) scopes() []*scope {
	byKey := map[string]*scope{}
	var order []*scope
	get := func(gate string, variants []string) *scope {
		key := gate + "|" + strings.Join(variants, ",")
		if s, ok := byKey[key]; ok {
			return s
		}
		s := &scope{cap: gate, variants: variants}
		byKey[key] = s
		order = append(order, s)
		return s
	}
	get("", nil) // base scope leads even when other entries come first
	for _, e := range g.def.Pins {
		s := get(e.Capability, e.Variants)
		s.pins = append(s.pins, e)
	}
	for _, e := range g.def.Periphs {
		s := get(e.Capability, e.Variants)
		s.periphs = append(s.periphs, e)
	}
	var out []*scope
	for _, s := range order {
		if len(s.pins) > 0 || len(s.periphs) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// shortTags trims the fits' common prefix for use in file names.
func (g *gen) shortTags(tags []string) []string {
	common := g.def.Variants[0]
	for _, t := range g.def.Variants[1:] {
		for !strings.HasPrefix(t, common) {
			common = common[:len(common)-1]
		}
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		short := strings.TrimPrefix(t, common)
		if short == "" {
			short = t
		}
		out[i] = short
	}
	return out
}

func (g *gen) pinsFileName(s *scope) string {
	parts := []string{"pins"}
	if s.cap != "" {
		c, _ := g.caps.Get(s.cap)
		parts = append(parts, c.Tag)
	}
	parts = append(parts, g.shortTags(s.variants)...)
	return strings.Join(parts, "_") + ".go"
}

func (g *gen) scopeBuildExpr(s *scope) string {
	variants := g.anyVariant
	if len(s.variants) > 0 {
		variants = strings.Join(s.variants, " || ")
	}
	if s.cap == "" {
		return variants
	}
	return "(" + variants + ") && " + g.capTag(s.cap)
}

func header(buf *bytes.Buffer, buildExpr string) {
	buf.WriteString(genHeader)
	if buildExpr != "" {
		fmt.Fprintf(buf, "//go:build %s\n\n", buildExpr)
	}
}

func (g *gen) docFile() string {
	var b bytes.Buffer
	b.WriteString(genHeader)
	fmt.Fprintf(&b, "// Package %s is the generated board support package for the %q board.\n", g.pkg, g.def.Board)
	fmt.Fprintf(&b, "//\n// Build for exactly one chip variant; the variant build tag comes with the\n// TinyGo target:\n//\n")
	fmt.Fprintf(&b, "//\t%s\n", strings.Join(g.def.Variants, ", "))
	if names := g.caps.Names(); len(names) > 0 {
		tags := make([]string, len(names))
		for i, n := range names {
			tags[i] = g.capTag(n)
		}
		fmt.Fprintf(&b, "//\n// Optional feature build tags:\n//\n//\t%s\n", strings.Join(tags, ", "))
		fmt.Fprintf(&b, "//\n// Feature-gated aliases only exist when their tag is active; referencing\n// one in a build without the tag is an ordinary unresolved-name compile\n// error.\n")
	}
	fmt.Fprintf(&b, "package %s\n", g.pkg)
	return b.String()
}

func (g *gen) variantFile(v variant.Variant) string {
	var b bytes.Buffer
	header(&b, v.Tag)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	fmt.Fprintf(&b, "// %s fit.\nconst (\n", v.Part)
	fmt.Fprintf(&b, "\tVariant = %q\n", v.Tag)
	fmt.Fprintf(&b, "\tChipPartNumber = %q\n\n", v.Part)
	fmt.Fprintf(&b, "\tdmacChannels = %d\n", v.DMAChannels)
	fmt.Fprintf(&b, ")\n")
	return b.String()
}

func (g *gen) variantGuardFile() string {
	var b bytes.Buffer
	header(&b, "tinygo && !("+g.anyVariant+")")
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	b.WriteString("// The build targets a chip this board was never fitted with: no chip\n")
	b.WriteString("// variant selected. Build with a -target whose chip tag is one of the\n")
	b.WriteString("// supported variants.\n")
	b.WriteString("var _ = errNoChipVariantSelected\n")
	return b.String()
}

func (g *gen) variantConflictFile() string {
	var pairs []string
	for i, a := range g.def.Variants {
		for _, x := range g.def.Variants[i+1:] {
			pairs = append(pairs, "("+a+" && "+x+")")
		}
	}
	var b bytes.Buffer
	header(&b, strings.Join(pairs, " || "))
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	b.WriteString("// More than one chip variant tag is active: conflicting chip variants\n")
	b.WriteString("// selected. A build picks exactly one fit.\n")
	b.WriteString("var _ = errConflictingChipVariants\n")
	return b.String()
}

func (g *gen) featureGuardFile(c, req feature.Capability) string {
	var b bytes.Buffer
	header(&b, g.prefix+"_"+c.Tag+" && !"+g.prefix+"_"+req.Tag)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	fmt.Fprintf(&b, "// The %s feature requires the %s feature; enabling it alone is a\n", c.Name, req.Name)
	b.WriteString("// build error naming the missing dependency.\n")
	fmt.Fprintf(&b, "var _ = err%sRequires%sFeature\n", strx.FieldName(c.Name), strx.FieldName(req.Name))
	return b.String()
}

func (g *gen) dmaFile(maxChannels bool) string {
	dmaTag := g.capTag("dma")
	var b bytes.Buffer
	if maxChannels {
		header(&b, "("+g.anyVariant+") && "+dmaTag+" && "+g.capTag("max-channels"))
		fmt.Fprintf(&b, "package %s\n\n", g.pkg)
		b.WriteString("// DMAChannels is the full DMAC channel pool of the fitted chip.\n")
		b.WriteString("const DMAChannels = dmacChannels\n")
	} else {
		// The !maxchan term only exists when the board wires the feature;
		// dma-only boards get an unconditional budget file.
		expr := "(" + g.anyVariant + ") && " + dmaTag
		if g.caps.Enabled("max-channels") {
			expr += " && !" + g.capTag("max-channels")
		}
		header(&b, expr)
		fmt.Fprintf(&b, "package %s\n\n", g.pkg)
		b.WriteString("// DMAChannels is the DMAC channel budget available to the program under\n")
		b.WriteString("// the default allocation.\n")
		b.WriteString("const DMAChannels = 12\n")
	}
	return b.String()
}

func (g *gen) pinsFile(s *scope) string {
	var b bytes.Buffer
	header(&b, g.scopeBuildExpr(s))
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	if len(s.pins) > 0 || (s.grouped() && len(s.periphs) > 0) {
		b.WriteString("import \"machine\"\n\n")
	}

	if len(s.pins) > 0 {
		switch {
		case s.base():
			b.WriteString("// Silkscreen pin names.\n")
		case s.cap != "":
			fmt.Fprintf(&b, "// Aliases gated on the %q capability.\n", s.cap)
		default:
			fmt.Fprintf(&b, "// Aliases limited to the %s fits.\n", strings.Join(s.variants, ", "))
		}
		b.WriteString("const (\n")
		for _, e := range s.pins {
			if e.Doc != "" {
				fmt.Fprintf(&b, "\t// %s\n", e.Doc)
			}
			fmt.Fprintf(&b, "\t%s = machine.%s\n", strx.ConstName(e.Name), e.Pin)
		}
		b.WriteString(")\n")
	}

	// Capability-gated groups extend the bundle through a method, so a
	// disabled capability removes the whole surface, fields included.
	if s.grouped() {
		groupName := strx.FieldName(s.cap)
		fmt.Fprintf(&b, "\n// %sPins groups the aliases gated on the %q capability.\n", groupName, s.cap)
		fmt.Fprintf(&b, "type %sPins struct {\n", groupName)
		for _, e := range s.pins {
			typ := e.Mode.ViewType()
			if typ == "" {
				typ = "machine.Pin"
			}
			fmt.Fprintf(&b, "\t%s %s\n", strx.FieldName(e.Name), typ)
		}
		for _, e := range s.periphs {
			fmt.Fprintf(&b, "\t%s %s\n", strx.FieldName(e.Name), e.Type)
		}
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "// %s returns the capability's alias group.\n", groupName)
		fmt.Fprintf(&b, "func (p *Periph) %s() %sPins {\n", groupName, groupName)
		fmt.Fprintf(&b, "\treturn %sPins{\n", groupName)
		for _, e := range s.pins {
			fmt.Fprintf(&b, "\t\t%s: %s,\n", strx.FieldName(e.Name), pinValue(e))
		}
		for _, e := range s.periphs {
			fmt.Fprintf(&b, "\t\t%s: machine.%s,\n", strx.FieldName(e.Name), e.Periph)
		}
		b.WriteString("\t}\n}\n")
	}
	return b.String()
}

// pinValue renders the bundle value for a pin entry: the raw constant, or
// the constant wrapped in its mode view.
func pinValue(e board.PinEntry) string {
	c := strx.ConstName(e.Name)
	if t := e.Mode.ViewType(); t != "" {
		return t + "(" + c + ")"
	}
	return c
}

// usedModes returns the mode view types the table needs, in canonical order.
func (g *gen) usedModes() []board.Mode {
	used := map[board.Mode]bool{}
	for _, e := range g.def.Pins {
		if e.Mode != board.ModeNone {
			used[e.Mode] = true
		}
	}
	var out []board.Mode
	for _, m := range []board.Mode{
		board.ModeInput, board.ModeInputPullup, board.ModeInputPulldown,
		board.ModeOutput, board.ModeAnalog,
	} {
		if used[m] {
			out = append(out, m)
		}
	}
	return out
}

func (g *gen) pinmodesFile(modes []board.Mode) string {
	var b bytes.Buffer
	header(&b, g.anyVariant)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	b.WriteString("import \"machine\"\n")

	input := func(typ, doc, mode string) {
		fmt.Fprintf(&b, "\n// %s is a pin the alias table fixes as %s.\n", typ, doc)
		fmt.Fprintf(&b, "type %s machine.Pin\n\n", typ)
		b.WriteString("// Configure puts the pin in its declared mode.\n")
		fmt.Fprintf(&b, "func (p %s) Configure() {\n", typ)
		fmt.Fprintf(&b, "\tmachine.Pin(p).Configure(machine.PinConfig{Mode: %s})\n}\n\n", mode)
		b.WriteString("// Get reads the pin level.\n")
		fmt.Fprintf(&b, "func (p %s) Get() bool { return machine.Pin(p).Get() }\n", typ)
	}

	for _, m := range modes {
		switch m {
		case board.ModeInput:
			input("InputPin", "a floating input", "machine.PinInput")
		case board.ModeInputPullup:
			input("InputPullupPin", "an input with the internal pull-up enabled", "machine.PinInputPullup")
		case board.ModeInputPulldown:
			input("InputPulldownPin", "an input with the internal pull-down enabled", "machine.PinInputPulldown")
		case board.ModeOutput:
			b.WriteString("\n// OutputPin is a pin the alias table fixes in push-pull output mode.\n")
			b.WriteString("type OutputPin machine.Pin\n\n")
			b.WriteString("// Configure puts the pin in its declared mode.\n")
			b.WriteString("func (p OutputPin) Configure() {\n")
			b.WriteString("\tmachine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})\n}\n\n")
			b.WriteString("// Set drives the pin high or low.\n")
			b.WriteString("func (p OutputPin) Set(high bool) { machine.Pin(p).Set(high) }\n\n")
			b.WriteString("// High drives the pin high.\n")
			b.WriteString("func (p OutputPin) High() { machine.Pin(p).High() }\n\n")
			b.WriteString("// Low drives the pin low.\n")
			b.WriteString("func (p OutputPin) Low() { machine.Pin(p).Low() }\n\n")
			b.WriteString("// Get reads back the driven level.\n")
			b.WriteString("func (p OutputPin) Get() bool { return machine.Pin(p).Get() }\n\n")
			b.WriteString("// Toggle inverts the driven level.\n")
			b.WriteString("func (p OutputPin) Toggle() { machine.Pin(p).Set(!machine.Pin(p).Get()) }\n")
		case board.ModeAnalog:
			b.WriteString("\n// AnalogPin is a pin the alias table reserves for the ADC.\n")
			b.WriteString("type AnalogPin machine.Pin\n\n")
			b.WriteString("// Configure initialises the ADC subsystem and the pin's channel.\n")
			b.WriteString("func (p AnalogPin) Configure() {\n")
			b.WriteString("\tmachine.InitADC()\n")
			b.WriteString("\ta := p.ADC()\n")
			b.WriteString("\ta.Configure(machine.ADCConfig{})\n}\n\n")
			b.WriteString("// ADC returns the machine ADC handle for the pin.\n")
			b.WriteString("func (p AnalogPin) ADC() machine.ADC { return machine.ADC{Pin: machine.Pin(p)} }\n\n")
			b.WriteString("// Get reads one sample.\n")
			b.WriteString("func (p AnalogPin) Get() uint16 {\n")
			b.WriteString("\ta := p.ADC()\n")
			b.WriteString("\treturn a.Get()\n}\n")
		}
	}
	return b.String()
}

func (g *gen) boardFile() string {
	var base *scope
	for _, s := range g.scopes() {
		if s.base() {
			base = s
			break
		}
	}

	needMachine := false
	if base != nil {
		needMachine = len(base.periphs) > 0
		for _, e := range base.pins {
			if e.Mode == board.ModeNone {
				needMachine = true
			}
		}
	}

	var b bytes.Buffer
	header(&b, g.anyVariant)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	if needMachine {
		b.WriteString("import (\n\t\"machine\"\n\t\"sync/atomic\"\n)\n\n")
	} else {
		b.WriteString("import \"sync/atomic\"\n\n")
	}

	b.WriteString("// Periph is the one-time bundle of the board's named peripherals. Raw\n")
	b.WriteString("// pins keep the machine pin type, mode-fixed pins carry their mode in\n")
	b.WriteString("// the type, and bus peripherals keep the machine handle type.\n")
	b.WriteString("type Periph struct {\n")
	if base != nil {
		for _, e := range base.pins {
			typ := e.Mode.ViewType()
			if typ == "" {
				typ = "machine.Pin"
			}
			fmt.Fprintf(&b, "\t%s %s\n", strx.FieldName(e.Name), typ)
		}
		if len(base.periphs) > 0 {
			b.WriteString("\n")
			for _, e := range base.periphs {
				fmt.Fprintf(&b, "\t%s %s\n", strx.FieldName(e.Name), e.Type)
			}
		}
	}
	b.WriteString("}\n\n")

	b.WriteString("var taken atomic.Bool\n\n")
	b.WriteString("// Take claims ownership of the board peripheral set. It may be called\n")
	b.WriteString("// once per program; a second call panics. Take performs no hardware\n")
	b.WriteString("// setup of its own.\n")
	b.WriteString("func Take() *Periph {\n")
	fmt.Fprintf(&b, "\tif !taken.CompareAndSwap(false, true) {\n\t\tpanic(%q)\n\t}\n", g.pkg+": peripherals already taken")
	b.WriteString("\treturn &Periph{\n")
	if base != nil {
		for _, e := range base.pins {
			fmt.Fprintf(&b, "\t\t%s: %s,\n", strx.FieldName(e.Name), pinValue(e))
		}
		for _, e := range base.periphs {
			fmt.Fprintf(&b, "\t\t%s: machine.%s,\n", strx.FieldName(e.Name), e.Periph)
		}
	}
	b.WriteString("\t}\n}\n")
	return b.String()
}
