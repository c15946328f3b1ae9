// Command orngen renders the per-arity surface of the orn module: the sum
// types Or1..Or<max> with their full operation set, the cross-arity
// conversion lattice, and the seq/future/par adapter packages. One
// arity-parameterized definition lives here; everything under pkg/orn that
// carries a generated-code header is its output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

const header = "// Code generated by orngen; DO NOT EDIT.\n"

func main() {
	maxArity := flag.Int("max", 8, "largest arity to generate (1..32; 8, 16 and 32 are the supported configurations)")
	root := flag.String("root", ".", "directory of package orn; adapters go into its seq, future and par subdirectories")
	flag.Parse()

	if *maxArity < 1 || *maxArity > 32 {
		log.Fatalf("orngen: -max %d out of range 1..32", *maxArity)
	}

	for k := 1; k <= *maxArity; k++ {
		write(filepath.Join(*root, fmt.Sprintf("or_%d.go", k)), emitOr(k))
		write(filepath.Join(*root, "seq", fmt.Sprintf("seq_%d.go", k)), emitSeq(k))
		write(filepath.Join(*root, "future", fmt.Sprintf("await_%d.go", k)), emitFuture(k))
		write(filepath.Join(*root, "par", fmt.Sprintf("par_%d.go", k)), emitPar(k))
	}
	write(filepath.Join(*root, "convert.go"), emitConvert(*maxArity))
}

func write(path string, src string) {
	out, err := imports.Process(path, []byte(src), nil)
	if err != nil {
		log.Fatalf("orngen: format %s: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("orngen: %v", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		log.Fatalf("orngen: %v", err)
	}
}

// gen accumulates output line by line.
type gen struct {
	sb strings.Builder
}

// w writes one verbatim line.
func (g *gen) w(line string) {
	g.sb.WriteString(line)
	g.sb.WriteByte('\n')
}

// f writes one formatted line.
func (g *gen) f(format string, args ...any) {
	fmt.Fprintf(&g.sb, format+"\n", args...)
}

func (g *gen) blank() { g.sb.WriteByte('\n') }

func (g *gen) String() string { return g.sb.String() }

// perCase switches over the active case, collapsing to a plain body when the
// arity is 1. body receives the case index and its indentation level.
func (g *gen) perCase(k, ind int, tag string, body func(i, ind int)) {
	t := strings.Repeat("\t", ind)
	if k == 1 {
		body(0, ind)
		return
	}
	g.w(t + "switch " + tag + " {")
	for i := 0; i < k; i++ {
		if i == k-1 {
			g.w(t + "default:")
		} else {
			g.f("%scase %d:", t, i)
		}
		body(i, ind+1)
	}
	g.w(t + "}")
}

// fields writes a gofmt-aligned field block.
func (g *gen) fields(names, types []string) {
	w := 0
	for _, n := range names {
		w = max(w, len(n))
	}
	w++
	for i := range names {
		g.w("\t" + names[i] + strings.Repeat(" ", w-len(names[i])) + types[i])
	}
}

// tl renders the type list "T0, T1, ..." with the given prefix.
func tl(k int, prefix string) string {
	parts := make([]string, k)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return strings.Join(parts, ", ")
}

// each renders one comma-joined element per position.
func each(k int, render func(i int) string) string {
	parts := make([]string, k)
	for i := range parts {
		parts[i] = render(i)
	}
	return strings.Join(parts, ", ")
}

// orty renders "Or<k>[T0, ...]".
func orty(k int) string {
	return fmt.Sprintf("Or%d[%s]", k, tl(k, "T"))
}

func tuplety(k int) string {
	return fmt.Sprintf("Tuple%d[%s]", k, tl(k, "T"))
}

// sub renders the type list with position i replaced by r.
func sub(k, i int, r string) string {
	return each(k, func(j int) string {
		if j == i {
			return r
		}
		return fmt.Sprintf("T%d", j)
	})
}

func star(k int) string {
	return each(k, func(i int) string { return fmt.Sprintf("*T%d", i) })
}

func hom(k int) string {
	return each(k, func(int) string { return "T" })
}

func emitOr(k int) string {
	g := &gen{}
	g.w(header)
	g.w("package orn")
	g.blank()
	g.w("import (\n\t\"cmp\"\n\t\"encoding/json\"\n\t\"fmt\"\n\n\t\"gopkg.in/yaml.v3\"\n)")
	g.blank()

	plural := "s"
	if k == 1 {
		plural = ""
	}
	g.f("// Or%d is a sum with %d positional case%s; exactly one is active. The zero", k, k, plural)
	g.w("// value is case 0 holding the zero value of T0.")
	g.f("type Or%d[%s any] struct {", k, tl(k, "T"))
	names := []string{"tag"}
	types := []string{"uint8"}
	for i := 0; i < k; i++ {
		names = append(names, fmt.Sprintf("t%d", i))
		types = append(types, fmt.Sprintf("T%d", i))
	}
	g.fields(names, types)
	g.w("}")
	g.blank()

	g.f("// Tuple%d is the product counterpart of Or%d: every position is present.", k, k)
	g.f("type Tuple%d[%s any] struct {", k, tl(k, "T"))
	names, types = nil, nil
	for i := 0; i < k; i++ {
		names = append(names, fmt.Sprintf("V%d", i))
		types = append(types, fmt.Sprintf("T%d", i))
	}
	g.fields(names, types)
	g.w("}")
	g.blank()

	g.f("// Or%dArity is the number of cases of Or%d.", k, k)
	g.f("const Or%dArity = %d", k, k)
	g.blank()

	for i := 0; i < k; i++ {
		g.f("// Or%dOf%d wraps v into case %d of Or%d.", k, i, i, k)
		g.f("func Or%dOf%d[%s any](v T%d) %s {", k, i, tl(k, "T"), i, orty(k))
		g.f("\treturn %s{tag: %d, t%d: v}", orty(k), i, i)
		g.w("}")
		g.blank()
	}

	g.w("// Index reports the active case index.")
	g.f("func (o %s) Index() int {", orty(k))
	g.w("\treturn int(o.tag)")
	g.w("}")
	g.blank()

	g.w("// Arity reports the number of cases.")
	g.f("func (%s) Arity() int {", orty(k))
	g.f("\treturn Or%dArity", k)
	g.w("}")
	g.blank()

	g.w("// Arity reports the number of positions.")
	g.f("func (%s) Arity() int {", tuplety(k))
	g.f("\treturn Or%dArity", k)
	g.w("}")
	g.blank()

	for i := 0; i < k; i++ {
		g.f("// Is%d reports whether case %d is active.", i, i)
		g.f("func (o %s) Is%d() bool {", orty(k), i)
		g.f("\treturn o.tag == %d", i)
		g.w("}")
		g.blank()
	}

	for i := 0; i < k; i++ {
		g.f("// Get%d returns the contained value if case %d is active.", i, i)
		g.f("func (o %s) Get%d() (T%d, bool) {", orty(k), i, i)
		g.f("\tif o.tag != %d {", i)
		g.f("\t\tvar zero T%d", i)
		g.w("\t\treturn zero, false")
		g.w("\t}")
		g.f("\treturn o.t%d, true", i)
		g.w("}")
		g.blank()
	}

	g.w("// Is reports whether case i is active. It agrees with the named tests for")
	g.w("// every index.")
	g.f("func (o %s) Is(i int) bool {", orty(k))
	g.w("\treturn int(o.tag) == i")
	g.w("}")
	g.blank()

	g.w("// At returns the contained value if case i is active. It agrees with the")
	g.w("// named accessors for every index.")
	g.f("func (o %s) At(i int) (any, bool) {", orty(k))
	g.w("\tif i != int(o.tag) {")
	g.w("\t\treturn nil, false")
	g.w("\t}")
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn o.t%d, true", strings.Repeat("\t", ind), i)
	})
	g.w("}")
	g.blank()

	g.w("// At returns the value at position i; it panics if i is out of range.")
	g.f("func (t %s) At(i int) any {", tuplety(k))
	g.w("\tswitch i {")
	for i := 0; i < k; i++ {
		g.f("\tcase %d:", i)
		g.f("\t\treturn t.V%d", i)
	}
	g.w("\tdefault:")
	g.f("\t\tpanic(fmt.Sprintf(\"orn: position %%d out of range for Tuple%d\", i))", k)
	g.w("\t}")
	g.w("}")
	g.blank()

	g.w("// Ptr returns a pointer to position i; it panics if i is out of range.")
	g.f("func (t *%s) Ptr(i int) any {", tuplety(k))
	g.w("\tswitch i {")
	for i := 0; i < k; i++ {
		g.f("\tcase %d:", i)
		g.f("\t\treturn &t.V%d", i)
	}
	g.w("\tdefault:")
	g.f("\t\tpanic(fmt.Sprintf(\"orn: position %%d out of range for Tuple%d\", i))", k)
	g.w("\t}")
	g.w("}")
	g.blank()

	g.w("// String formats the active value exactly as the value formats itself, with")
	g.w("// no case prefix.")
	g.f("func (o %s) String() string {", orty(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn fmt.Sprint(o.t%d)", strings.Repeat("\t", ind), i)
	})
	g.w("}")
	g.blank()

	g.w("// MarshalJSON encodes the active value bare, with no case tag.")
	g.f("func (o %s) MarshalJSON() ([]byte, error) {", orty(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn json.Marshal(o.t%d)", strings.Repeat("\t", ind), i)
	})
	g.w("}")
	g.blank()

	g.w("// UnmarshalJSON decodes data into the first case, in position order, that")
	g.w("// accepts it. Position order decides ties, so reordering type parameters")
	g.w("// changes which case wins.")
	g.f("func (o *%s) UnmarshalJSON(data []byte) error {", orty(k))
	for i := 0; i < k; i++ {
		g.f("\tvar v%d T%d", i, i)
		g.f("\tif err := decodeJSONStrict(data, &v%d); err == nil {", i)
		g.f("\t\t*o = Or%dOf%d[%s](v%d)", k, i, tl(k, "T"), i)
		g.w("\t\treturn nil")
		g.w("\t}")
	}
	g.f("\treturn fmt.Errorf(\"orn: %%s matches no case of Or%d\", data)", k)
	g.w("}")
	g.blank()

	g.w("// MarshalYAML encodes the active value bare, with no case tag.")
	g.f("func (o %s) MarshalYAML() (any, error) {", orty(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn o.t%d, nil", strings.Repeat("\t", ind), i)
	})
	g.w("}")
	g.blank()

	g.w("// UnmarshalYAML decodes the node into the first case, in position order,")
	g.w("// that accepts it.")
	g.f("func (o *%s) UnmarshalYAML(node *yaml.Node) error {", orty(k))
	for i := 0; i < k; i++ {
		g.f("\tvar v%d T%d", i, i)
		g.f("\tif err := node.Decode(&v%d); err == nil {", i)
		g.f("\t\t*o = Or%dOf%d[%s](v%d)", k, i, tl(k, "T"), i)
		g.w("\t\treturn nil")
		g.w("\t}")
	}
	g.f("\treturn fmt.Errorf(\"orn: yaml %%s node matches no case of Or%d\", node.Tag)", k)
	g.w("}")
	g.blank()

	for i := 0; i < k; i++ {
		g.f("// Or%dMap%d transforms position %d when case %d is active; other cases pass", k, i, i, i)
		g.w("// through with only the type substitution applied.")
		g.f("func Or%dMap%d[%s, R any](o %s, f func(T%d) R) Or%d[%s] {", k, i, tl(k, "T"), orty(k), i, k, sub(k, i, "R"))
		g.perCase(k, 1, "o.tag", func(j, ind int) {
			arg := fmt.Sprintf("o.t%d", j)
			if j == i {
				arg = fmt.Sprintf("f(o.t%d)", j)
			}
			g.f("%sreturn Or%dOf%d[%s](%s)", strings.Repeat("\t", ind), k, j, sub(k, i, "R"), arg)
		})
		g.w("}")
		g.blank()
	}

	g.f("// Or%dConverge collapses the sum into a single T, whichever case is active.", k)
	g.f("func Or%dConverge[T, %s any](o %s, %s) T {", k, tl(k, "T"), orty(k),
		each(k, func(i int) string { return fmt.Sprintf("f%d func(T%d) T", i, i) }))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn f%d(o.t%d)", strings.Repeat("\t", ind), i, i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dRef projects o into a sum of pointers to the contained values. The", k)
	g.w("// result borrows from o and is valid for as long as o is.")
	g.f("func Or%dRef[%s any](o *%s) Or%d[%s] {", k, tl(k, "T"), orty(k), k, star(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn Or%dOf%d[%s](&o.t%d)", strings.Repeat("\t", ind), k, i, star(k), i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dDeref copies the pointed-to values out of a sum of pointers.", k)
	g.f("func Or%dDeref[%s any](o Or%d[%s]) %s {", k, tl(k, "T"), k, star(k), orty(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn Or%dOf%d[%s](*o.t%d)", strings.Repeat("\t", ind), k, i, tl(k, "T"), i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dInner unwraps a sum whose cases all hold the same type.", k)
	g.f("func Or%dInner[T any](o Or%d[%s]) T {", k, k, hom(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn o.t%d", strings.Repeat("\t", ind), i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dMapInner transforms the contained value of a homogeneous sum while", k)
	g.w("// preserving the active case.")
	g.f("func Or%dMapInner[T any](o Or%d[%s], f func(T) T) Or%d[%s] {", k, k, hom(k), k, hom(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn Or%dOf%d[%s](f(o.t%d))", strings.Repeat("\t", ind), k, i, hom(k), i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dMapInnerWith is Or%dMapInner with auxiliary state threaded into f.", k, k)
	g.f("func Or%dMapInnerWith[S, T any](o Or%d[%s], state S, f func(S, T) T) Or%d[%s] {", k, k, hom(k), k, hom(k))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn Or%dOf%d[%s](f(state, o.t%d))", strings.Repeat("\t", ind), k, i, hom(k), i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dErr returns the active error of a sum of errors.", k)
	g.f("func Or%dErr[%s error](o Or%d[%s]) error {", k, tl(k, "E"), k, tl(k, "E"))
	g.perCase(k, 1, "o.tag", func(i, ind int) {
		g.f("%sreturn o.t%d", strings.Repeat("\t", ind), i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dEqual reports whether a and b hold the same case and equal values.", k)
	g.f("func Or%dEqual[%s comparable](a, b %s) bool {", k, tl(k, "T"), orty(k))
	if k > 1 {
		g.w("\tif a.tag != b.tag {")
		g.w("\t\treturn false")
		g.w("\t}")
	}
	g.perCase(k, 1, "a.tag", func(i, ind int) {
		g.f("%sreturn a.t%d == b.t%d", strings.Repeat("\t", ind), i, i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dCompare orders by case index first, then by contained value.", k)
	g.f("func Or%dCompare[%s cmp.Ordered](a, b %s) int {", k, tl(k, "T"), orty(k))
	if k > 1 {
		g.w("\tif c := cmp.Compare(a.tag, b.tag); c != 0 {")
		g.w("\t\treturn c")
		g.w("\t}")
	}
	g.perCase(k, 1, "a.tag", func(i, ind int) {
		g.f("%sreturn cmp.Compare(a.t%d, b.t%d)", strings.Repeat("\t", ind), i, i)
	})
	g.w("}")
	g.blank()

	g.f("// Or%dFromTuple splits t into one single-case sum per position, row i active", k)
	g.w("// at case i.")
	g.f("func Or%dFromTuple[%s any](t %s) [%d]%s {", k, tl(k, "T"), tuplety(k), k, orty(k))
	g.f("\treturn [%d]%s{", k, orty(k))
	for i := 0; i < k; i++ {
		g.f("\t\tOr%dOf%d[%s](t.V%d),", k, i, tl(k, "T"), i)
	}
	g.w("\t}")
	g.w("}")
	g.blank()

	g.f("// Or%dIntoTuple rebuilds the tuple from rows. It succeeds only if row i is", k)
	g.w("// active at case i for every position; on failure the caller keeps rows")
	g.w("// untouched.")
	g.f("func Or%dIntoTuple[%s any](rows [%d]%s) (%s, bool) {", k, tl(k, "T"), k, orty(k), tuplety(k))
	g.f("\tvar t %s", tuplety(k))
	g.w("\tvar ok bool")
	for i := 0; i < k; i++ {
		g.f("\tif t.V%d, ok = rows[%d].Get%d(); !ok {", i, i, i)
		g.f("\t\treturn %s{}, false", tuplety(k))
		g.w("\t}")
	}
	g.w("\treturn t, true")
	g.w("}")

	return g.String()
}

func emitConvert(maxArity int) string {
	g := &gen{}
	g.w(header)
	g.w("package orn")
	for k := 2; k <= maxArity; k++ {
		for j := 1; j < k; j++ {
			g.blank()
			g.f("// Widen%dTo%d embeds an Or%d into Or%d, preserving case and value.", j, k, j, k)
			g.f("func Widen%dTo%d[%s any](o Or%d[%s]) %s {", j, k, tl(k, "T"), j, tl(j, "T"), orty(k))
			g.perCase(j, 1, "o.tag", func(i, ind int) {
				g.f("%sreturn Or%dOf%d[%s](o.t%d)", strings.Repeat("\t", ind), k, i, tl(k, "T"), i)
			})
			g.w("}")
			g.blank()
			g.f("// Narrow%dTo%d extracts an Or%d from an Or%d when the active case index is", k, j, j, k)
			g.f("// below %d; on failure ok is false and the caller keeps o untouched.", j)
			g.f("func Narrow%dTo%d[%s any](o %s) (Or%d[%s], bool) {", k, j, tl(k, "T"), orty(k), j, tl(j, "T"))
			g.w("\tswitch o.tag {")
			for i := 0; i < j; i++ {
				g.f("\tcase %d:", i)
				g.f("\t\treturn Or%dOf%d[%s](o.t%d), true", j, i, tl(j, "T"), i)
			}
			g.w("\tdefault:")
			g.f("\t\treturn Or%d[%s]{}, false", j, tl(j, "T"))
			g.w("\t}")
			g.w("}")
		}
	}
	return g.String()
}

func emitSeq(k int) string {
	g := &gen{}
	el := tl(k, "E")
	item := fmt.Sprintf("orn.Or%d[%s]", k, el)
	seqs := each(k, func(i int) string { return fmt.Sprintf("iter.Seq[E%d]", i) })
	sls := each(k, func(i int) string { return fmt.Sprintf("[]E%d", i) })
	homs := each(k, func(int) string { return "[]E" })

	g.w(header)
	g.w("package seq")
	g.blank()
	g.w("import (\n\t\"iter\"\n\n\t\"github.com/ib-77/orn/pkg/orn\"\n)")
	g.blank()

	g.f("// Of%d iterates the active sequence, tagging every element with its case.", k)
	g.f("func Of%d[%s any](o orn.Or%d[%s]) iter.Seq[%s] {", k, el, k, seqs, item)
	g.f("\treturn func(yield func(%s) bool) {", item)
	g.perCase(k, 2, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%ss, _ := o.Get%d()", t, i)
		g.w(t + "for e := range s {")
		g.f("%s\tif !yield(orn.Or%dOf%d[%s](e)) {", t, k, i, el)
		g.w(t + "\t\treturn")
		g.w(t + "\t}")
		g.w(t + "}")
	})
	g.w("\t}")
	g.w("}")
	g.blank()

	g.f("// Slice%d iterates the active slice forward, tagging elements with the case.", k)
	g.f("func Slice%d[%s any](o orn.Or%d[%s]) iter.Seq[%s] {", k, el, k, sls, item)
	g.f("\treturn func(yield func(%s) bool) {", item)
	g.perCase(k, 2, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%ss, _ := o.Get%d()", t, i)
		g.w(t + "for _, e := range s {")
		g.f("%s\tif !yield(orn.Or%dOf%d[%s](e)) {", t, k, i, el)
		g.w(t + "\t\treturn")
		g.w(t + "\t}")
		g.w(t + "}")
	})
	g.w("\t}")
	g.w("}")
	g.blank()

	g.f("// Backward%d iterates the active slice in reverse, tagging elements with the", k)
	g.w("// case.")
	g.f("func Backward%d[%s any](o orn.Or%d[%s]) iter.Seq[%s] {", k, el, k, sls, item)
	g.f("\treturn func(yield func(%s) bool) {", item)
	g.perCase(k, 2, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%ss, _ := o.Get%d()", t, i)
		g.w(t + "for i := len(s) - 1; i >= 0; i-- {")
		g.f("%s\tif !yield(orn.Or%dOf%d[%s](s[i])) {", t, k, i, el)
		g.w(t + "\t\treturn")
		g.w(t + "\t}")
		g.w(t + "}")
	})
	g.w("\t}")
	g.w("}")
	g.blank()

	g.f("// Len%d reports the length of the active slice.", k)
	g.f("func Len%d[%s any](o orn.Or%d[%s]) int {", k, el, k, sls)
	g.perCase(k, 1, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%ss, _ := o.Get%d()", t, i)
		g.w(t + "return len(s)")
	})
	g.w("}")
	g.blank()

	g.f("// Extend%d appends items to the active slice, whichever case holds it.", k)
	g.f("func Extend%d[E any](o orn.Or%d[%s], items ...E) orn.Or%d[%s] {", k, k, homs, k, homs)
	g.f("\treturn orn.Or%dMapInner(o, func(s []E) []E {", k)
	g.w("\t\treturn append(s, items...)")
	g.w("\t})")
	g.w("}")

	return g.String()
}

func emitFuture(k int) string {
	g := &gen{}
	el := tl(k, "T")
	chans := each(k, func(i int) string { return fmt.Sprintf("<-chan T%d", i) })
	ret := fmt.Sprintf("orn.Or%d[%s]", k, el)

	g.w(header)
	g.w("package future")
	g.blank()
	g.w("import (\n\t\"context\"\n\n\t\"github.com/ib-77/orn/pkg/orn\"\n)")
	g.blank()

	g.f("// Await%d receives from the active channel, tagging the value with its case.", k)
	g.w("// It returns ctx.Err on cancellation and ErrClosed on a closed channel; no")
	g.w("// other suspension point is added.")
	g.f("func Await%d[%s any](ctx context.Context, o orn.Or%d[%s]) (%s, error) {", k, el, k, chans, ret)
	g.perCase(k, 1, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%sch, _ := o.Get%d()", t, i)
		g.w(t + "select {")
		g.w(t + "case v, ok := <-ch:")
		g.w(t + "\tif !ok {")
		g.f("%s\t\treturn %s{}, ErrClosed", t, ret)
		g.w(t + "\t}")
		g.f("%s\treturn orn.Or%dOf%d[%s](v), nil", t, k, i, el)
		g.w(t + "case <-ctx.Done():")
		g.f("%s\treturn %s{}, ctx.Err()", t, ret)
		g.w(t + "}")
	})
	g.w("}")

	return g.String()
}

func emitPar(k int) string {
	g := &gen{}
	el := tl(k, "E")
	sls := each(k, func(i int) string { return fmt.Sprintf("[]E%d", i) })
	ptrs := each(k, func(i int) string { return fmt.Sprintf("*[]E%d", i) })
	fs := each(k, func(i int) string { return fmt.Sprintf("f%d func(context.Context, E%d) error", i, i) })
	fsr := each(k, func(i int) string { return fmt.Sprintf("f%d func(context.Context, E%d) (R, error)", i, i) })

	g.w(header)
	g.w("package par")
	g.blank()
	g.w("import (\n\t\"context\"\n\n\t\"github.com/ib-77/orn/pkg/orn\"\n\t\"golang.org/x/sync/errgroup\"\n)")
	g.blank()

	g.f("// Each%d applies the positional worker to every element of the active slice,", k)
	g.w("// fanning out over an errgroup with at most limit workers (no limit if <= 0).")
	g.f("func Each%d[%s any](ctx context.Context, o orn.Or%d[%s], limit int, %s) error {", k, el, k, sls, fs)
	g.w("\tg, ctx := errgroup.WithContext(ctx)")
	g.w("\tif limit > 0 {")
	g.w("\t\tg.SetLimit(limit)")
	g.w("\t}")
	g.perCase(k, 1, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%ss, _ := o.Get%d()", t, i)
		g.w(t + "for _, e := range s {")
		g.f("%s\tg.Go(func() error { return f%d(ctx, e) })", t, i)
		g.w(t + "}")
	})
	g.w("\treturn g.Wait()")
	g.w("}")
	g.blank()

	g.f("// Collect%d maps every element of the active slice in parallel, preserving", k)
	g.w("// input order in the result.")
	g.f("func Collect%d[R, %s any](ctx context.Context, o orn.Or%d[%s], limit int, %s) ([]R, error) {", k, el, k, sls, fsr)
	g.w("\tg, ctx := errgroup.WithContext(ctx)")
	g.w("\tif limit > 0 {")
	g.w("\t\tg.SetLimit(limit)")
	g.w("\t}")
	g.w("\tvar out []R")
	g.perCase(k, 1, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%ss, _ := o.Get%d()", t, i)
		g.w(t + "out = make([]R, len(s))")
		g.w(t + "for i, e := range s {")
		g.w(t + "\tg.Go(func() error {")
		g.f("%s\t\tr, err := f%d(ctx, e)", t, i)
		g.w(t + "\t\tif err != nil {")
		g.w(t + "\t\t\treturn err")
		g.w(t + "\t\t}")
		g.w(t + "\t\tout[i] = r")
		g.w(t + "\t\treturn nil")
		g.w(t + "\t})")
		g.w(t + "}")
	})
	g.w("\tif err := g.Wait(); err != nil {")
	g.w("\t\treturn nil, err")
	g.w("\t}")
	g.w("\treturn out, nil")
	g.w("}")
	g.blank()

	g.f("// Drain%d processes every element of the active slice in parallel, emptying", k)
	g.w("// the slice afterwards. The slice is truncated only if every worker succeeds.")
	g.f("func Drain%d[%s any](ctx context.Context, o orn.Or%d[%s], limit int, %s) error {", k, el, k, ptrs, fs)
	g.w("\tg, ctx := errgroup.WithContext(ctx)")
	g.w("\tif limit > 0 {")
	g.w("\t\tg.SetLimit(limit)")
	g.w("\t}")
	g.perCase(k, 1, "o.Index()", func(i, ind int) {
		t := strings.Repeat("\t", ind)
		g.f("%sp, _ := o.Get%d()", t, i)
		g.w(t + "for _, e := range *p {")
		g.f("%s\tg.Go(func() error { return f%d(ctx, e) })", t, i)
		g.w(t + "}")
		g.w(t + "if err := g.Wait(); err != nil {")
		g.w(t + "\treturn err")
		g.w(t + "}")
		g.w(t + "*p = (*p)[:0]")
	})
	g.w("\treturn nil")
	g.w("}")

	return g.String()
}
