package dataset

import (
	"fmt"
	"path/filepath"
)

// Baseline returns the hand-curated fixture set for the given kind: one
// coherent industrial linear actuator product, small enough to review by
// eye. Unlike Generate, the content is static — no randomness, identical
// output on every call.
func Baseline(kind Kind) []Record {
	switch kind {
	case Requirement:
		return baselineRequirements
	case Component:
		return baselineComponents
	case Supplier:
		return baselineSuppliers
	case Risk:
		return baselineRisks
	case Test:
		return baselineTests
	}

	panic(fmt.Sprintf("dataset: unknown kind %q", string(kind)))
}

// WriteBaseline writes the full curated fixture set into dir, one CSV per
// entity kind, using each kind's import schema as the header.
func WriteBaseline(dir string) error {
	for _, kind := range Kinds() {
		path := filepath.Join(dir, kind.Filename())
		if err := WriteCSV(path, kind.Schema(), Baseline(kind)); err != nil {
			return fmt.Errorf("write baseline %s: %w", kind, err)
		}
	}

	return nil
}

var baselineRequirements = []Record{
	{
		"title": "Stroke Length", "type": "input", "priority": "critical",
		"status": "approved", "category": "performance",
		"text":      "The actuator shall have a stroke length of 150mm ± 1mm",
		"rationale": "Required for full range of motion in target application",
		"tags":      "mechanical,critical",
	},
	{
		"title": "Maximum Force", "type": "input", "priority": "critical",
		"status": "approved", "category": "performance",
		"text":      "The actuator shall produce a minimum of 500N continuous force",
		"rationale": "Load requirements from customer specification",
		"tags":      "mechanical,force",
	},
	{
		"title": "Speed Range", "type": "input", "priority": "high",
		"status": "approved", "category": "performance",
		"text":      "The actuator shall achieve speeds from 5mm/s to 50mm/s",
		"rationale": "Variable speed required for different operating modes",
		"tags":      "mechanical,speed",
	},
	{
		"title": "Positioning Accuracy", "type": "input", "priority": "high",
		"status": "approved", "category": "performance",
		"text":      "Position repeatability shall be ±0.1mm",
		"rationale": "Precision positioning required for automation application",
		"tags":      "mechanical,precision",
	},
	{
		"title": "Operating Temperature", "type": "input", "priority": "high",
		"status": "approved", "category": "environmental",
		"text":      "The actuator shall operate from -20°C to +50°C ambient",
		"rationale": "Industrial environment temperature range",
		"tags":      "environmental,thermal",
	},
	{
		"title": "IP Rating", "type": "input", "priority": "high",
		"status": "approved", "category": "environmental",
		"text":      "The actuator shall meet IP65 ingress protection",
		"rationale": "Protection against dust and water jets required",
		"tags":      "environmental,sealing",
	},
	{
		"title": "EMC Compliance", "type": "input", "priority": "medium",
		"status": "approved", "category": "environmental",
		"text":      "The actuator shall comply with EN 61000-6-2 and EN 61000-6-4",
		"rationale": "Required for CE marking",
		"tags":      "electrical,regulatory",
	},
	{
		"title": "Input Voltage", "type": "input", "priority": "critical",
		"status": "approved", "category": "electrical",
		"text":      "The actuator shall operate from 24VDC ±10%",
		"rationale": "Standard industrial control voltage",
		"tags":      "electrical,power",
	},
	{
		"title": "Control Interface", "type": "input", "priority": "high",
		"status": "approved", "category": "electrical",
		"text":      "The actuator shall provide RS-485 Modbus RTU interface",
		"rationale": "Integration with industrial PLCs",
		"tags":      "electrical,interface",
	},
	{
		"title": "Feedback Signal", "type": "input", "priority": "high",
		"status": "approved", "category": "electrical",
		"text":      "The actuator shall provide analog 0-10V position feedback",
		"rationale": "Closed-loop position control requirement",
		"tags":      "electrical,feedback",
	},
	{
		"title": "Overload Protection", "type": "input", "priority": "critical",
		"status": "approved", "category": "safety",
		"text":      "The actuator shall detect and respond to overload within 100ms",
		"rationale": "Prevent damage from obstruction or jamming",
		"tags":      "safety,protection",
	},
	{
		"title": "Limit Switches", "type": "input", "priority": "high",
		"status": "approved", "category": "safety",
		"text":      "The actuator shall have adjustable end-of-travel limits",
		"rationale": "Prevent mechanical over-travel damage",
		"tags":      "safety,mechanical",
	},
	{
		"title": "Design Life", "type": "input", "priority": "high",
		"status": "approved", "category": "reliability",
		"text":      "The actuator shall achieve 1 million full stroke cycles minimum",
		"rationale": "5-year service life at expected usage rate",
		"tags":      "reliability,life",
	},
	{
		"title": "Motor Selection", "type": "output", "priority": "high",
		"status": "approved", "category": "electrical",
		"text":      "Motor shall be NEMA 23 brushless DC, minimum 0.5Nm continuous torque",
		"rationale": "Derived from force and speed requirements",
		"tags":      "electrical,motor",
	},
	{
		"title": "Lead Screw Pitch", "type": "output", "priority": "high",
		"status": "approved", "category": "mechanical",
		"text":      "Lead screw pitch shall be 5mm for optimal speed/force tradeoff",
		"rationale": "Calculated from speed and force requirements",
		"tags":      "mechanical,drivetrain",
	},
	{
		"title": "Seal Design", "type": "output", "priority": "high",
		"status": "approved", "category": "mechanical",
		"text":      "Rod seal shall be double-lip NBR with dust wiper",
		"rationale": "Required for IP65 rating at operating temperature",
		"tags":      "mechanical,sealing",
	},
}

var baselineComponents = []Record{
	{
		"part_number": "LA-HSG-001", "title": "Main Housing",
		"make_buy": "make", "category": "mechanical",
		"description": "Extruded aluminum housing with machined features",
		"material":    "6063-T6 Aluminum", "finish": "Clear anodize",
		"mass": "0.850", "cost": "45.00", "tags": "structural,machined",
	},
	{
		"part_number": "LA-CAP-001", "title": "Front End Cap",
		"make_buy": "make", "category": "mechanical",
		"description": "Machined end cap with seal groove and bearing bore",
		"material":    "6061-T6 Aluminum", "finish": "Clear anodize",
		"mass": "0.120", "cost": "18.00", "tags": "structural,machined",
	},
	{
		"part_number": "LA-ROD-001", "title": "Extension Rod",
		"make_buy": "make", "category": "mechanical",
		"description": "Ground and chrome plated piston rod",
		"material":    "1045 Steel", "finish": "Hard chrome",
		"mass": "0.340", "cost": "35.00", "tags": "precision,ground",
	},
	{
		"part_number": "LA-NUT-001", "title": "Lead Screw Nut",
		"make_buy": "make", "category": "mechanical",
		"description": "Bronze lead screw nut with anti-backlash feature",
		"material":    "C93200 Bronze", "finish": "As machined",
		"mass": "0.085", "cost": "28.00", "tags": "precision,wear",
	},
	{
		"part_number": "LA-SCR-001", "title": "Lead Screw",
		"make_buy": "buy", "category": "mechanical",
		"description": "Precision ground lead screw Tr16x5",
		"material":    "1045 Steel hardened", "finish": "Black oxide",
		"mass": "0.420", "cost": "65.00", "tags": "precision,drivetrain",
	},
	{
		"part_number": "LA-BRG-001", "title": "Front Bearing",
		"make_buy": "buy", "category": "mechanical",
		"description": "Angular contact bearing 6002-2RS",
		"material":    "52100 Steel", "finish": "Standard",
		"mass": "0.032", "cost": "8.50", "tags": "bearing,precision",
	},
	{
		"part_number": "LA-SEL-001", "title": "Rod Seal",
		"make_buy": "buy", "category": "mechanical",
		"description": "Double-lip rod seal 16x24x7",
		"material":    "NBR rubber", "finish": "Standard",
		"mass": "0.008", "cost": "3.25", "tags": "seal,wear",
	},
	{
		"part_number": "LA-SEL-002", "title": "Dust Wiper",
		"make_buy": "buy", "category": "mechanical",
		"description": "Polyurethane dust wiper 16x22x4",
		"material":    "Polyurethane", "finish": "Standard",
		"mass": "0.004", "cost": "1.85", "tags": "seal,protection",
	},
	{
		"part_number": "LA-MOT-001", "title": "BLDC Motor",
		"make_buy": "buy", "category": "electrical",
		"description": "NEMA 23 brushless DC motor 24V 0.6Nm",
		"material":    "Various", "finish": "Black powder coat",
		"mass": "0.580", "cost": "85.00", "tags": "motor,drivetrain",
	},
	{
		"part_number": "LA-ENC-001", "title": "Rotary Encoder",
		"make_buy": "buy", "category": "electrical",
		"description": "Incremental encoder 1000 PPR",
		"material":    "Various", "finish": "Standard",
		"mass": "0.045", "cost": "28.00", "tags": "sensor,feedback",
	},
	{
		"part_number": "LA-DRV-001", "title": "Motor Driver",
		"make_buy": "buy", "category": "electrical",
		"description": "BLDC motor driver module 24V 10A",
		"material":    "PCB assembly", "finish": "Conformal coat",
		"mass": "0.065", "cost": "42.00", "tags": "electronics,control",
	},
	{
		"part_number": "LA-LIM-001", "title": "Limit Switch",
		"make_buy": "buy", "category": "electrical",
		"description": "Micro limit switch with lever",
		"material":    "Various", "finish": "Standard",
		"mass": "0.012", "cost": "2.80", "tags": "sensor,safety",
	},
	{
		"part_number": "LA-FST-001", "title": "End Cap Screws",
		"make_buy": "buy", "category": "fastener",
		"description": "M4x12 socket head cap screw A2-70",
		"material":    "Stainless steel", "finish": "Passivated",
		"mass": "0.003", "cost": "0.08", "tags": "fastener,assembly",
	},
	{
		"part_number": "LA-CON-003", "title": "Thread Locker",
		"make_buy": "buy", "category": "consumable",
		"description": "Loctite 243 medium strength",
		"material":    "Anaerobic adhesive", "finish": "N/A",
		"mass": "0.001", "cost": "0.15", "tags": "consumable,assembly",
	},
}

var baselineSuppliers = []Record{
	{
		"name": "Precision Motion Systems", "short_name": "PMS",
		"category":     "drivetrain", "contact_name": "Mike Chen",
		"contact_email": "mchen@precisionmotion.example",
		"contact_phone": "+1-555-0101",
		"website":       "https://precisionmotion.example",
		"tags":          "motors,screws,bearings",
	},
	{
		"name": "Allied Sealing Technologies", "short_name": "AST",
		"category":     "sealing", "contact_name": "Sarah Johnson",
		"contact_email": "sjohnson@alliedsealing.example",
		"contact_phone": "+1-555-0102",
		"website":       "https://alliedsealing.example",
		"tags":          "seals,orings",
	},
	{
		"name": "Global Electronics Supply", "short_name": "GES",
		"category":     "electronics", "contact_name": "David Park",
		"contact_email": "dpark@globalelec.example",
		"contact_phone": "+1-555-0103",
		"website":       "https://globalelec.example",
		"tags":          "electronics,connectors,sensors",
	},
	{
		"name": "MetalWorks CNC", "short_name": "MWCNC",
		"category":     "machining", "contact_name": "Tom Williams",
		"contact_email": "twilliams@metalworkscnc.example",
		"contact_phone": "+1-555-0104",
		"website":       "https://metalworkscnc.example",
		"tags":          "machining,make",
	},
	{
		"name": "FastenerWorld", "short_name": "FW",
		"category":     "fasteners", "contact_name": "Lisa Brown",
		"contact_email": "lbrown@fastenerworld.example",
		"contact_phone": "+1-555-0105",
		"website":       "https://fastenerworld.example",
		"tags":          "fasteners,hardware",
	},
}

var baselineRisks = []Record{
	{
		"title": "Motor Overheating", "type": "design", "category": "thermal",
		"description":  "Motor may overheat under continuous high-load operation",
		"failure_mode": "Thermal shutdown or winding damage during extended operation",
		"cause":        "Insufficient heat dissipation path from motor to housing",
		"effect":       "System shutdown, potential motor damage, warranty returns",
		"severity":     "7", "occurrence": "4", "detection": "5",
		"tags": "thermal,motor",
	},
	{
		"title": "Lead Screw Wear", "type": "design", "category": "wear",
		"description":  "Accelerated wear on lead screw nut interface",
		"failure_mode": "Excessive backlash and positioning error over time",
		"cause":        "Inadequate lubrication or contamination ingress",
		"effect":       "Degraded positioning accuracy, shortened service life",
		"severity":     "6", "occurrence": "5", "detection": "6",
		"tags": "wear,drivetrain",
	},
	{
		"title": "Seal Failure", "type": "design", "category": "sealing",
		"description":  "Rod seal may fail under extreme temperature cycling",
		"failure_mode": "Seal extrusion or hardening leading to leakage",
		"cause":        "Temperature cycling beyond seal material limits",
		"effect":       "Loss of IP65 rating, contamination ingress",
		"severity":     "8", "occurrence": "3", "detection": "4",
		"tags": "sealing,environmental",
	},
	{
		"title": "Encoder Miscounting", "type": "design", "category": "electrical",
		"description":  "Encoder may miscount under EMI conditions",
		"failure_mode": "Position feedback errors and drift",
		"cause":        "Insufficient EMI shielding on encoder signals",
		"effect":       "Positioning errors, potential safety issue",
		"severity":     "7", "occurrence": "3", "detection": "5",
		"tags": "electrical,emc",
	},
	{
		"title": "Housing Bore Tolerance", "type": "process", "category": "machining",
		"description":  "Housing bore may go out of tolerance",
		"failure_mode": "Bore diameter or concentricity out of specification",
		"cause":        "Tool wear, thermal growth, or setup error",
		"effect":       "Bearing fit issues, assembly problems",
		"severity":     "6", "occurrence": "4", "detection": "3",
		"tags": "machining,dimensional",
	},
	{
		"title": "Wrong Fastener Torque", "type": "process", "category": "assembly",
		"description":  "Fasteners may be under or over-torqued",
		"failure_mode": "Loose or stripped fasteners",
		"cause":        "Operator error or uncalibrated tools",
		"effect":       "Assembly loosening in service or stripped threads",
		"severity":     "6", "occurrence": "4", "detection": "5",
		"tags": "assembly,fastener",
	},
	{
		"title": "Seal Installation Damage", "type": "process", "category": "assembly",
		"description":  "Seals may be damaged during installation",
		"failure_mode": "Cut, twisted, or improperly seated seal",
		"cause":        "Sharp edges, improper technique, or missing lubrication",
		"effect":       "Immediate or premature seal failure",
		"severity":     "7", "occurrence": "4", "detection": "5",
		"tags": "assembly,sealing",
	},
	{
		"title": "Motor-Screw Misalignment", "type": "process", "category": "assembly",
		"description":  "Motor shaft may be misaligned with lead screw",
		"failure_mode": "Angular or parallel misalignment",
		"cause":        "Tolerance stackup or coupling installation error",
		"effect":       "Vibration, noise, reduced bearing life",
		"severity":     "5", "occurrence": "5", "detection": "4",
		"tags": "assembly,alignment",
	},
}

var baselineTests = []Record{
	{
		"title": "Stroke Length Verification", "type": "verification",
		"level": "system", "method": "test", "category": "dimensional",
		"priority":  "critical",
		"objective": "Verify actuator achieves specified stroke length",
		"description": "Measure full stroke extension and retraction " +
			"using calibrated linear scale",
		"estimated_duration": "15 min", "tags": "dimensional,critical",
	},
	{
		"title": "Force Output Test", "type": "verification",
		"level": "system", "method": "test", "category": "performance",
		"priority":  "critical",
		"objective": "Verify actuator produces specified continuous force",
		"description": "Apply increasing load via dynamometer until stall, " +
			"measure continuous force capability",
		"estimated_duration": "30 min", "tags": "force,performance",
	},
	{
		"title": "Speed Range Verification", "type": "verification",
		"level": "system", "method": "test", "category": "performance",
		"priority":  "high",
		"objective": "Verify actuator speed range meets specification",
		"description": "Measure extension/retraction speed at min and max " +
			"settings using high-speed camera or laser",
		"estimated_duration": "20 min", "tags": "speed,performance",
	},
	{
		"title": "Position Repeatability Test", "type": "verification",
		"level": "system", "method": "test", "category": "performance",
		"priority":  "high",
		"objective": "Verify position repeatability specification",
		"description": "Command 10 cycles to same position, measure " +
			"variation with dial indicator",
		"estimated_duration": "45 min", "tags": "precision,performance",
	},
	{
		"title": "IP65 Ingress Test", "type": "verification",
		"level": "system", "method": "test", "category": "environmental",
		"priority":  "high",
		"objective": "Verify IP65 dust and water jet protection",
		"description": "Subject to dust chamber test and 6.3mm water jet " +
			"at 12.5 l/min per IEC 60529",
		"estimated_duration": "4 hr", "tags": "environmental,sealing",
	},
	{
		"title": "Temperature Cycling Test", "type": "verification",
		"level": "system", "method": "test", "category": "environmental",
		"priority":  "high",
		"objective": "Verify operation across temperature range",
		"description": "Operate through 10 cycles of -20°C to +50°C " +
			"with 30 min dwells",
		"estimated_duration": "24 hr", "tags": "environmental,thermal",
	},
	{
		"title": "Housing Dimensional Inspection", "type": "verification",
		"level": "unit", "method": "inspection", "category": "dimensional",
		"priority":  "high",
		"objective": "Verify housing critical dimensions",
		"description": "CMM inspection of bearing bores, seal grooves, " +
			"and mounting features",
		"estimated_duration": "45 min", "tags": "dimensional,machined",
	},
	{
		"title": "First Article Inspection", "type": "verification",
		"level": "system", "method": "inspection", "category": "dimensional",
		"priority":           "critical",
		"objective":          "Complete dimensional inspection of first production unit",
		"description":        "Full CMM inspection per drawing requirements",
		"estimated_duration": "4 hr", "tags": "fai,dimensional",
	},
	{
		"title": "Customer Application Trial", "type": "validation",
		"level": "acceptance", "method": "demonstration",
		"category": "application", "priority": "high",
		"objective": "Validate actuator performance in customer application",
		"description": "Install in customer machine, run typical duty " +
			"cycle for 1 week",
		"estimated_duration": "168 hr", "tags": "validation,customer",
	},
	{
		"title": "Lifecycle Durability Test", "type": "validation",
		"level": "system", "method": "test", "category": "reliability",
		"priority":  "high",
		"objective": "Validate actuator achieves design life cycles",
		"description": "Continuous cycling at rated load until failure " +
			"or 1M cycles",
		"estimated_duration": "2000 hr", "tags": "reliability,endurance",
	},
}
