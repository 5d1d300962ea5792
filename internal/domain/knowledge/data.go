package knowledge

// componentData is the authoritative reference dataset. Declarative only;
// all decision logic lives elsewhere. Ranges keep their human-readable unit
// suffixes and are parsed by ParseRange.
var componentData = map[Component]ComponentInfo{
	WBC: {
		Description: "White Blood Cells (WBCs) are crucial components of your immune system that help fight infections and diseases.",
		NormalRange: "4000-11000 cells/mcL",
		Function:    "They protect your body by attacking bacteria, viruses, and other harmful substances.",
		Meanings: map[Status]string{
			StatusLow:    "Low WBC (leukopenia) indicates a weakened immune system, making you more susceptible to infections.",
			StatusHigh:   "High WBC (leukocytosis) often indicates your body is fighting an infection or inflammation.",
			StatusNormal: "Your WBC count is within healthy range.",
		},
		Symptoms: map[Status][]string{
			StatusLow: {
				"Frequent infections",
				"Fever",
				"Fatigue",
				"Slow wound healing",
				"Recurring infections",
			},
			StatusHigh: {
				"Fever",
				"Body aches",
				"Night sweats",
				"Unexplained weight loss",
				"Infection symptoms",
			},
			StatusNormal: {},
		},
		Causes: map[Status][]string{
			StatusLow: {
				"Bone marrow problems",
				"Autoimmune conditions",
				"Cancer treatments",
				"Severe infections",
				"Certain medications",
			},
			StatusHigh: {
				"Bacterial infections",
				"Inflammation",
				"Leukemia",
				"Stress response",
				"Certain medications",
			},
			StatusNormal: {},
		},
		Treatment: map[Status][]string{
			StatusLow: {
				"Treating underlying conditions",
				"Growth factor medications",
				"Antibiotic prophylaxis",
				"Lifestyle modifications",
				"Regular monitoring",
			},
			StatusHigh: {
				"Treating underlying infection",
				"Anti-inflammatory medications",
				"Lifestyle changes",
				"Regular monitoring",
				"Stress management",
			},
			StatusNormal: {},
		},
		Maintenance: Maintenance{
			Diet: []string{
				"Antioxidant-rich foods",
				"Zinc-rich foods (nuts, seeds)",
				"Protein-rich foods",
				"Vitamin C rich foods",
				"Probiotic-rich foods",
			},
			Lifestyle: []string{
				"Regular moderate exercise",
				"Good sleep hygiene",
				"Stress reduction techniques",
				"Good hand hygiene",
				"Avoid exposure to pollutants",
			},
			Monitoring: []string{
				"Regular blood tests",
				"Track any infections",
				"Monitor body temperature",
				"Note unusual fatigue",
				"Regular health check-ups",
			},
		},
		Improvement: Improvement{
			Increase: []string{
				"Follow prescribed medications",
				"Adequate protein intake",
				"Rest and recovery",
				"Stress management",
				"Regular gentle exercise",
			},
			Decrease: []string{
				"Follow prescribed medications",
				"Avoid triggers if known",
				"Rest when needed",
				"Maintain good hygiene",
				"Manage underlying conditions",
			},
			Timeline: "Changes can be seen within 1-2 weeks with proper treatment",
		},
	},
	Hemoglobin: {
		Description: "Hemoglobin is a protein in red blood cells that carries oxygen throughout your body. It's crucial for delivering oxygen from your lungs to all your tissues and organs.",
		NormalRange: "12-17 g/dL",
		Function:    "Transports oxygen from the lungs to the body's tissues.",
		Meanings: map[Status]string{
			StatusLow:    "Low hemoglobin (anemia) indicates reduced oxygen-carrying capacity, leading to fatigue and shortness of breath.",
			StatusHigh:   "High hemoglobin may indicate dehydration, lung disease, or a blood disorder, often leading to thicker blood and potential clotting issues.",
			StatusNormal: "Your hemoglobin level is within healthy range.",
		},
		Symptoms: map[Status][]string{
			StatusLow: {
				"Fatigue",
				"Shortness of breath",
				"Pale skin",
				"Weakness",
				"Dizziness",
			},
			StatusHigh: {
				"Headache",
				"Dizziness",
				"Flushed skin",
				"Vision disturbances",
				"High blood pressure",
			},
			StatusNormal: {},
		},
		Causes: map[Status][]string{
			StatusLow: {
				"Iron deficiency",
				"Vitamin B12 deficiency",
				"Chronic illness",
				"Bone marrow disorders",
				"Blood loss",
			},
			StatusHigh: {
				"Dehydration",
				"Smoking",
				"High altitude adaptation",
				"Lung disease",
				"Polycythemia vera",
			},
			StatusNormal: {},
		},
		Treatment: map[Status][]string{
			StatusLow: {
				"Iron supplements",
				"Vitamin B12 or folate supplements",
				"Dietary adjustments",
				"Blood transfusions",
				"Treatment of underlying conditions",
			},
			StatusHigh: {
				"Hydration",
				"Phlebotomy (blood removal)",
				"Oxygen therapy",
				"Medication",
				"Treatment of underlying conditions",
			},
			StatusNormal: {},
		},
		Maintenance: Maintenance{
			Diet: []string{
				"Iron-rich foods (red meat, spinach, beans)",
				"Vitamin C rich foods to enhance iron absorption",
				"Vitamin B12 rich foods (eggs, dairy, meat)",
				"Folate-rich foods (leafy greens, citrus)",
				"Avoid foods that inhibit iron absorption (coffee, tea)",
			},
			Lifestyle: []string{
				"Regular moderate exercise",
				"Adequate sleep (7-9 hours)",
				"Stress management",
				"Avoid smoking",
				"Limit alcohol consumption",
			},
			Monitoring: []string{
				"Regular blood tests every 3-6 months",
				"Track energy levels",
				"Monitor skin color and pallor",
				"Note any unusual fatigue",
				"Keep a symptom diary",
			},
		},
		Improvement: Improvement{
			Increase: []string{
				"Take iron supplements as prescribed",
				"Pair iron-rich foods with vitamin C",
				"Cook in cast iron cookware",
				"Follow prescribed treatment plan",
				"Regular exercise to stimulate blood production",
			},
			Decrease: []string{
				"Stay well hydrated",
				"Avoid iron supplements unless prescribed",
				"Regular blood donation if recommended",
				"Follow prescribed medications",
				"Limit red meat consumption",
			},
			Timeline: "Improvement typically seen within 2-4 weeks with proper treatment",
		},
	},
	Platelets: {
		Description: "Platelets are tiny blood cells that help your body form clots to stop bleeding, essential for wound healing.",
		NormalRange: "150,000-450,000 per microliter",
		Function:    "Plays a key role in blood clotting and wound healing.",
		Meanings: map[Status]string{
			StatusLow:    "Low platelet count (thrombocytopenia) can increase bleeding risk and cause easy bruising.",
			StatusHigh:   "High platelet count (thrombocytosis) may increase clotting risk, often due to inflammation or a bone marrow disorder.",
			StatusNormal: "Your platelet count is within healthy range, indicating normal blood clotting ability.",
		},
		Symptoms: map[Status][]string{
			StatusLow: {
				"Easy bruising",
				"Frequent nosebleeds",
				"Prolonged bleeding from cuts",
				"Red spots on the skin",
				"Excessive bleeding",
			},
			StatusHigh: {
				"Headache",
				"Dizziness",
				"Chest pain",
				"Weakness",
				"Tingling in hands and feet",
			},
			StatusNormal: {
				"Normal blood clotting",
				"No unusual bruising",
				"Normal wound healing",
				"No spontaneous bleeding",
			},
		},
		Causes: map[Status][]string{
			StatusLow: {
				"Autoimmune disorders",
				"Viral infections",
				"Heavy alcohol consumption",
				"Leukemia or lymphoma",
				"Certain medications",
			},
			StatusHigh: {
				"Inflammation",
				"Infection",
				"Iron deficiency",
				"Surgery or trauma",
				"Bone marrow disorders",
			},
			StatusNormal: {
				"Healthy bone marrow function",
				"Normal immune system activity",
				"Good overall health",
				"Balanced platelet production and destruction",
			},
		},
		Treatment: map[Status][]string{
			StatusLow: {
				"Avoiding medications that affect platelets",
				"Blood or platelet transfusions",
				"Medications to boost platelet production",
				"Treating underlying conditions",
				"Diet and lifestyle changes",
			},
			StatusHigh: {
				"Medications to reduce platelet count",
				"Blood thinners",
				"Aspirin therapy",
				"Treatment of underlying conditions",
				"Regular monitoring",
			},
			StatusNormal: {
				"Maintain healthy lifestyle",
				"Regular exercise",
				"Balanced diet",
				"Regular check-ups",
			},
		},
		Maintenance: Maintenance{
			Diet: []string{
				"Eat foods rich in vitamin K (leafy greens)",
				"Include vitamin B12 rich foods",
				"Consume foods with folate",
				"Stay hydrated",
				"Limit alcohol consumption",
			},
			Lifestyle: []string{
				"Regular moderate exercise",
				"Avoid blood thinning medications unless prescribed",
				"Maintain a healthy weight",
				"Get adequate sleep",
				"Manage stress levels",
			},
			Monitoring: []string{
				"Regular blood tests every 3-6 months",
				"Track any unusual bruising",
				"Monitor bleeding time",
				"Keep a symptom diary",
				"Regular check-ups with healthcare provider",
			},
		},
		Improvement: Improvement{
			Increase: []string{
				"Increase vitamin K intake",
				"Take prescribed supplements",
				"Stay hydrated",
				"Follow prescribed medication plan",
				"Get adequate rest",
			},
			Decrease: []string{
				"Follow prescribed medications",
				"Avoid blood thinning foods",
				"Stay hydrated",
				"Regular exercise",
				"Monitor diet",
			},
			Timeline: "Improvement typically seen within 2-4 weeks with proper treatment",
		},
	},
	Hematocrit: {
		Description: "Hematocrit measures the percentage of red blood cells in your blood, crucial for oxygen transport.",
		NormalRange: "38-50%",
		Function:    "Assesses the oxygen-carrying capacity of the blood.",
		Meanings: map[Status]string{
			StatusLow:    "Low hematocrit may indicate anemia or blood loss, leading to decreased oxygen supply.",
			StatusHigh:   "High hematocrit can cause blood thickening, often due to dehydration, lung disease, or polycythemia vera.",
			StatusNormal: "Your hematocrit level is within healthy range.",
		},
		Symptoms: map[Status][]string{
			StatusLow: {
				"Fatigue",
				"Weakness",
				"Shortness of breath",
				"Pale or yellowish skin",
				"Headache",
			},
			StatusHigh: {
				"Dizziness",
				"Headache",
				"Blurred vision",
				"Flushed skin",
				"Increased risk of blood clots",
			},
			StatusNormal: {},
		},
		Causes: map[Status][]string{
			StatusLow: {
				"Blood loss",
				"Nutritional deficiencies",
				"Bone marrow disorders",
				"Kidney disease",
				"Chronic illness",
			},
			StatusHigh: {
				"Dehydration",
				"High altitude",
				"Lung disease",
				"Polycythemia vera",
				"Smoking",
			},
			StatusNormal: {},
		},
		Treatment: map[Status][]string{
			StatusLow: {
				"Iron supplements",
				"Diet adjustments",
				"Treating underlying cause",
				"Blood transfusion",
				"Bone marrow transplant (in severe cases)",
			},
			StatusHigh: {
				"Hydration",
				"Blood donation (phlebotomy)",
				"Oxygen therapy",
				"Lifestyle changes",
				"Medications",
			},
			StatusNormal: {},
		},
		Maintenance: Maintenance{
			Diet: []string{
				"Iron-rich foods",
				"Vitamin C for iron absorption",
				"Adequate protein intake",
				"Stay well hydrated",
				"Balanced nutrition",
			},
			Lifestyle: []string{
				"Regular exercise",
				"Avoid smoking",
				"Limit alcohol",
				"Maintain healthy weight",
				"Get adequate sleep",
			},
			Monitoring: []string{
				"Regular blood tests",
				"Track energy levels",
				"Monitor hydration status",
				"Regular medical check-ups",
				"Note any unusual symptoms",
			},
		},
		Improvement: Improvement{
			Increase: []string{
				"Iron supplementation if prescribed",
				"Vitamin C with iron-rich foods",
				"Increase fluid intake",
				"Follow prescribed treatment plan",
				"Regular exercise",
			},
			Decrease: []string{
				"Increase hydration",
				"Reduce altitude exposure if applicable",
				"Follow prescribed medications",
				"Modify exercise routine",
				"Dietary adjustments",
			},
			Timeline: "Changes typically observed within 4-8 weeks of consistent treatment",
		},
	},
	MCV: {
		Description: "Mean Corpuscular Volume (MCV) measures the average size of red blood cells, aiding in anemia diagnosis.",
		NormalRange: "80-100 fL",
		Function:    "Helps diagnose different types of anemia based on red blood cell size.",
		Meanings: map[Status]string{
			StatusLow:    "Low MCV (microcytosis) suggests smaller than average red blood cells, often due to iron deficiency.",
			StatusHigh:   "High MCV (macrocytosis) indicates larger red blood cells, often due to vitamin B12 or folate deficiency.",
			StatusNormal: "Your MCV is within healthy range.",
		},
		Symptoms: map[Status][]string{
			StatusLow: {
				"Fatigue",
				"Weakness",
				"Pale skin",
				"Shortness of breath",
				"Dizziness",
			},
			StatusHigh: {
				"Fatigue",
				"Pale skin",
				"Shortness of breath",
				"Weakness",
				"Difficulty concentrating",
			},
			StatusNormal: {},
		},
		Causes: map[Status][]string{
			StatusLow: {
				"Iron deficiency",
				"Thalassemia",
				"Chronic disease",
				"Lead poisoning",
				"Chronic blood loss",
			},
			StatusHigh: {
				"Vitamin B12 deficiency",
				"Folate deficiency",
				"Liver disease",
				"Hypothyroidism",
				"Alcoholism",
			},
			StatusNormal: {},
		},
		Treatment: map[Status][]string{
			StatusLow: {
				"Iron supplementation",
				"Dietary adjustments",
				"Treat underlying causes",
				"Vitamin C to improve absorption",
				"Regular monitoring",
			},
			StatusHigh: {
				"Vitamin B12 supplements",
				"Folate supplements",
				"Lifestyle changes",
				"Treat underlying conditions",
				"Regular monitoring",
			},
			StatusNormal: {},
		},
		Maintenance: Maintenance{
			Diet: []string{
				"Foods rich in vitamin B12",
				"Folate-rich foods (leafy greens)",
				"Iron-rich foods",
				"Balanced protein intake",
				"Avoid excessive alcohol",
			},
			Lifestyle: []string{
				"Regular exercise",
				"Adequate sleep",
				"Stress management",
				"Avoid smoking",
				"Limit alcohol consumption",
			},
			Monitoring: []string{
				"Regular blood tests",
				"Track energy levels",
				"Monitor diet changes",
				"Follow-up with healthcare provider",
				"Note any new symptoms",
			},
		},
		Improvement: Improvement{
			Increase: []string{
				"Vitamin B12 supplementation",
				"Folic acid supplements",
				"Iron-rich diet",
				"Treat underlying conditions",
				"Follow prescribed medications",
			},
			Decrease: []string{
				"Iron supplementation if prescribed",
				"Dietary modifications",
				"Treat underlying conditions",
				"Regular monitoring",
				"Follow medical advice",
			},
			Timeline: "Changes typically observed within 6-8 weeks of treatment",
		},
	},
	MCH: {
		Description: "Mean Corpuscular Hemoglobin (MCH) represents the average amount of hemoglobin per red blood cell.",
		NormalRange: "27-33 pg",
		Function:    "Useful in diagnosing types of anemia by assessing hemoglobin content in red blood cells.",
		Meanings: map[Status]string{
			StatusLow:    "Low MCH (hypochromia) can indicate iron deficiency, leading to pale or small red blood cells.",
			StatusHigh:   "High MCH (hyperchromia) may suggest vitamin B12 or folate deficiency, resulting in larger, fuller red blood cells.",
			StatusNormal: "Your MCH is within healthy range.",
		},
		Symptoms: map[Status][]string{
			StatusLow: {
				"Fatigue",
				"Weakness",
				"Pale skin",
				"Shortness of breath",
				"Dizziness",
			},
			StatusHigh: {
				"Fatigue",
				"Weakness",
				"Pale skin",
				"Shortness of breath",
				"Memory issues",
			},
			StatusNormal: {},
		},
		Causes: map[Status][]string{
			StatusLow: {
				"Iron deficiency",
				"Chronic blood loss",
				"Thalassemia",
				"Chronic disease",
				"Lead poisoning",
			},
			StatusHigh: {
				"Vitamin B12 deficiency",
				"Folate deficiency",
				"Liver disease",
				"Hypothyroidism",
				"Alcoholism",
			},
			StatusNormal: {},
		},
		Treatment: map[Status][]string{
			StatusLow: {
				"Iron supplementation",
				"Dietary adjustments",
				"Treat underlying causes",
				"Regular monitoring",
				"Vitamin C to enhance iron absorption",
			},
			StatusHigh: {
				"Vitamin B12 supplements",
				"Folate supplements",
				"Lifestyle changes",
				"Treat underlying conditions",
				"Regular monitoring",
			},
			StatusNormal: {},
		},
		Maintenance: Maintenance{
			Diet: []string{
				"Iron-rich foods",
				"Vitamin C sources",
				"B-vitamin rich foods",
				"Protein-rich foods",
				"Balanced nutrition",
			},
			Lifestyle: []string{
				"Regular moderate exercise",
				"Adequate hydration",
				"Proper sleep habits",
				"Stress reduction",
				"Avoid smoking",
			},
			Monitoring: []string{
				"Regular blood tests",
				"Track dietary changes",
				"Monitor energy levels",
				"Regular check-ups",
				"Record any symptoms",
			},
		},
		Improvement: Improvement{
			Increase: []string{
				"Iron supplementation",
				"Vitamin B12 supplements",
				"Folate supplementation",
				"Dietary improvements",
				"Treat underlying conditions",
			},
			Decrease: []string{
				"Adjust iron intake",
				"Dietary modifications",
				"Treat underlying causes",
				"Regular monitoring",
				"Follow medical advice",
			},
			Timeline: "Improvement typically seen within 4-8 weeks with appropriate treatment",
		},
	},
}
