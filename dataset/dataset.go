// Package dataset generates synthetic traceability entities and writes them
// as CSV fixture files matching the target tool's import schemas. Five kinds
// are supported: requirement, component, supplier, risk, and test.
package dataset

import (
	"fmt"
	mrand "math/rand"
	"strconv"
	"strings"
	"time"
)

// Kind identifies one entity type understood by the target tool.
type Kind string

const (
	Requirement Kind = "requirement"
	Component   Kind = "component"
	Supplier    Kind = "supplier"
	Risk        Kind = "risk"
	Test        Kind = "test"
)

// Kinds returns all entity kinds in import order. Risks and tests commonly
// reference requirements and components in the target tool's relational
// model, so imports must follow this order.
func Kinds() []Kind {
	return []Kind{Requirement, Component, Supplier, Risk, Test}
}

// Code returns the short name the target tool uses in its command grammar.
func (k Kind) Code() string {
	switch k {
	case Requirement:
		return "req"
	case Component:
		return "cmp"
	case Supplier:
		return "sup"
	case Risk:
		return "risk"
	case Test:
		return "test"
	}

	panic(fmt.Sprintf("dataset: unknown kind %q", string(k)))
}

// Filename returns the conventional fixture file name for the kind.
func (k Kind) Filename() string {
	switch k {
	case Requirement:
		return "requirements.csv"
	case Component:
		return "components.csv"
	case Supplier:
		return "suppliers.csv"
	case Risk:
		return "risks.csv"
	case Test:
		return "tests.csv"
	}

	panic(fmt.Sprintf("dataset: unknown kind %q", string(k)))
}

// Schema returns the ordered CSV header the target tool expects when
// importing the kind. Generated records carry exactly these fields.
func (k Kind) Schema() []string {
	switch k {
	case Requirement:
		return []string{
			"title", "type", "priority", "status", "category",
			"text", "rationale", "tags",
		}
	case Component:
		return []string{
			"part_number", "title", "make_buy", "category", "description",
			"material", "finish", "mass", "cost", "tags",
		}
	case Supplier:
		return []string{
			"name", "short_name", "category", "contact_name",
			"contact_email", "contact_phone", "website", "tags",
		}
	case Risk:
		return []string{
			"title", "type", "category", "description", "failure_mode",
			"cause", "effect", "severity", "occurrence", "detection", "tags",
		}
	case Test:
		return []string{
			"title", "type", "level", "method", "category", "priority",
			"objective", "description", "estimated_duration", "tags",
		}
	}

	panic(fmt.Sprintf("dataset: unknown kind %q", string(k)))
}

// Record is one entity as field name to value. Values are pre-formatted
// strings since the only consumer is the delimited fixture file.
type Record map[string]string

// Vocabularies for field assembly. Content is varied but deliberately
// non-unique so the generated project reads like a plausible product.
var (
	categories = []string{
		"performance", "safety", "environmental", "electrical",
		"mechanical", "thermal", "reliability", "interface",
	}
	priorities = []string{"critical", "high", "medium", "low"}
	statuses   = []string{"draft", "approved", "review"}
	reqTypes   = []string{"input", "output"}
	riskTypes  = []string{"design", "process"}
	testTypes  = []string{"verification", "validation"}
	testLevels = []string{"unit", "integration", "system", "acceptance"}
	testMethods = []string{
		"test", "inspection", "analysis", "demonstration",
	}
	// Weighted 1:3 toward buy.
	makeBuy       = []string{"make", "buy", "buy", "buy"}
	cmpCategories = []string{
		"mechanical", "electrical", "fastener", "consumable",
	}

	adjectives = []string{
		"Primary", "Secondary", "Auxiliary", "Main", "Critical",
		"Standard", "Enhanced", "Advanced", "Basic", "Core",
	}
	reqNouns = []string{
		"Temperature", "Pressure", "Speed", "Force", "Voltage",
		"Current", "Power", "Torque", "Flow", "Position",
		"Accuracy", "Repeatability", "Response", "Bandwidth",
		"Efficiency", "Life", "Weight", "Size", "Cost", "Noise",
	}
	cmpNouns = []string{
		"Housing", "Bracket", "Shaft", "Bearing", "Seal",
		"Motor", "Sensor", "Controller", "Connector", "Cable",
		"Screw", "Nut", "Washer", "Spring", "Plate",
		"Cover", "Frame", "Mount", "Clip", "Gasket",
	}
	riskNouns = []string{
		"Failure", "Degradation", "Wear", "Corrosion", "Fatigue",
		"Overload", "Misalignment", "Contamination", "Overheating",
		"Short Circuit", "Leakage", "Vibration", "Noise", "Drift",
		"Interference",
	}
)

// Generator produces randomized entity records. Randomness is owned by the
// Generator instance rather than package-level state, so callers control
// the seed and tests stay hermetic.
type Generator struct {
	rng *mrand.Rand
}

// NewGenerator creates a Generator. A zero seed means seed from the clock;
// generated content is illustrative, not reproducible, unless the caller
// fixes the seed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{rng: mrand.New(mrand.NewSource(seed))}
}

// Generate produces exactly n records of the given kind. n = 0 yields an
// empty sequence. An unknown kind is a caller bug and panics.
func (g *Generator) Generate(kind Kind, n int) []Record {
	var build func(i int) Record

	switch kind {
	case Requirement:
		build = g.requirement
	case Component:
		build = g.component
	case Supplier:
		build = g.supplier
	case Risk:
		build = g.risk
	case Test:
		build = g.test
	default:
		panic(fmt.Sprintf("dataset: unknown kind %q", string(kind)))
	}

	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, build(i))
	}

	return records
}

func (g *Generator) requirement(i int) Record {
	adj := g.pick(adjectives)
	noun := g.pick(reqNouns)
	cat := g.pick(categories)

	return Record{
		"title":    fmt.Sprintf("%s %s Requirement %d", adj, noun, i+1),
		"type":     g.pick(reqTypes),
		"priority": g.pick(priorities),
		"status":   g.pick(statuses),
		"category": cat,
		"text": fmt.Sprintf(
			"The system shall meet %s requirements for %s performance.",
			strings.ToLower(noun), cat,
		),
		"rationale": fmt.Sprintf(
			"Required for %s compliance and system performance.", cat,
		),
		"tags": cat + "," + g.pick(priorities),
	}
}

func (g *Generator) component(i int) Record {
	adj := g.pick(adjectives)
	noun := g.pick(cmpNouns)
	mb := g.pick(makeBuy)
	cat := g.pick(cmpCategories)

	return Record{
		"part_number": fmt.Sprintf("PN-%04d", i+1),
		"title":       fmt.Sprintf("%s %s %d", adj, noun, i+1),
		"make_buy":    mb,
		"category":    cat,
		"description": fmt.Sprintf("%s %s for system assembly", adj, noun),
		"material":    "Various",
		"finish":      "Standard",
		"mass":        formatFloat(g.uniform(0.01, 2.0), 3),
		"cost":        formatFloat(g.uniform(0.50, 150.0), 2),
		"tags":        cat + "," + mb,
	}
}

func (g *Generator) supplier(i int) Record {
	return Record{
		"name":          fmt.Sprintf("Supplier Company %d", i+1),
		"short_name":    fmt.Sprintf("SUP%02d", i+1),
		"category":      g.pick(cmpCategories),
		"contact_name":  fmt.Sprintf("Contact %d", i+1),
		"contact_email": fmt.Sprintf("contact%d@supplier%d.example", i+1, i+1),
		"contact_phone": fmt.Sprintf("+1-555-%04d", i+1),
		"website":       fmt.Sprintf("https://supplier%d.example", i+1),
		"tags":          g.pick(cmpCategories),
	}
}

func (g *Generator) risk(i int) Record {
	noun := g.pick(riskNouns)
	cat := g.pick(categories)
	rtype := g.pick(riskTypes)

	return Record{
		"title":    fmt.Sprintf("%s Risk %d", noun, i+1),
		"type":     rtype,
		"category": cat,
		"description": fmt.Sprintf(
			"Potential %s in %s subsystem", strings.ToLower(noun), cat,
		),
		"failure_mode": noun + " during operation",
		"cause": fmt.Sprintf(
			"Design or process deficiency in %s area", cat,
		),
		"effect": fmt.Sprintf(
			"System %s leading to performance degradation", strings.ToLower(noun),
		),
		"severity":   strconv.Itoa(g.rating()),
		"occurrence": strconv.Itoa(g.rating()),
		"detection":  strconv.Itoa(g.rating()),
		"tags":       cat + "," + rtype,
	}
}

func (g *Generator) test(i int) Record {
	adj := g.pick(adjectives)
	noun := g.pick(reqNouns)
	cat := g.pick(categories)
	ttype := g.pick(testTypes)

	return Record{
		"title":    fmt.Sprintf("%s %s Test %d", adj, noun, i+1),
		"type":     ttype,
		"level":    g.pick(testLevels),
		"method":   g.pick(testMethods),
		"category": cat,
		"priority": g.pick(priorities),
		"objective": fmt.Sprintf(
			"Verify %s performance meets specification", strings.ToLower(noun),
		),
		"description": fmt.Sprintf(
			"Test procedure for %s %s requirements", strings.ToLower(noun), cat,
		),
		"estimated_duration": fmt.Sprintf("%d min", 15+g.rng.Intn(466)),
		"tags":               cat + "," + ttype,
	}
}

func (g *Generator) pick(vals []string) string {
	return vals[g.rng.Intn(len(vals))]
}

// rating draws an FMEA-style rating in [1,10]. The target tool derives
// risk priority numbers from these; the harness never does.
func (g *Generator) rating() int {
	return 1 + g.rng.Intn(10)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
