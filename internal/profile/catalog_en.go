package profile

import "github.com/seedlinghq/seedling-engine/internal/bank"

// #region catalog-en

var catalogEN = map[bank.Category]Profile{
	bank.CategoryStructure: {
		Key:         bank.CategoryStructure,
		Title:       "The Planner",
		Description: "You thrive with organization and clear goals",
		Strengths:   []string{"Strong execution", "Reliable", "Detail-oriented", "Time management"},
		WatchOuts:   []string{"May struggle with sudden changes", "Can be rigid at times"},
		Patterns:    "You work best when you have a clear roadmap. You naturally break big goals into smaller steps.",
		NextSteps:   "Try managing a small project this week using a simple checklist or planner.",
		CareerPaths: []string{"Project management", "Operations", "Event coordination", "Logistics"},
		GrowthAreas: []GrowthArea{
			{Area: "Flexibility", Tip: "Leave one slot in your weekly plan deliberately empty.", Why: "Unplanned time trains you to handle surprises without stress."},
			{Area: "Delegation", Tip: "Hand one task to someone else and resist checking in.", Why: "Plans scale only when others can carry parts of them."},
		},
		Archetype: &Archetype{Name: "The Architect", Motto: "A goal without a plan is just a wish.", Power: "Turning chaos into checklists", Strength: "Follow-through"},
	},
	bank.CategoryAnalytical: {
		Key:         bank.CategoryAnalytical,
		Title:       "The Thinker",
		Description: "You approach problems with logic and reason",
		Strengths:   []string{"Problem-solving", "Critical thinking", "Pattern recognition", "Research skills"},
		WatchOuts:   []string{"May overthink simple decisions", "Could miss emotional aspects"},
		Patterns:    `You like understanding "why" things work. You are naturally curious about root causes.`,
		NextSteps:   "Pick one everyday problem and spend 10 minutes analyzing its root cause.",
		CareerPaths: []string{"Data analysis", "Engineering", "Research", "Strategy"},
		GrowthAreas: []GrowthArea{
			{Area: "Deciding under uncertainty", Tip: "Set a timer before small decisions and commit when it rings.", Why: "Most choices are reversible; speed is a skill you can practice."},
			{Area: "Reading the room", Tip: "In your next group discussion, name one feeling before one fact.", Why: "Logic lands better when people feel heard first."},
		},
		Archetype: &Archetype{Name: "The Detective", Motto: "Every problem leaves clues.", Power: "Seeing the pattern behind the noise", Strength: "Depth of thought"},
	},
	bank.CategorySocial: {
		Key:         bank.CategorySocial,
		Title:       "The Connector",
		Description: "You energize and bring people together",
		Strengths:   []string{"Communication", "Team building", "Leadership potential", "Networking"},
		WatchOuts:   []string{"May struggle working alone", "Can take on too much responsibility"},
		Patterns:    "You gain energy from interactions. You naturally facilitate conversations and activities.",
		NextSteps:   "Initiate one meaningful conversation with someone new this week.",
		CareerPaths: []string{"Teaching", "Sales", "Community management", "Public relations"},
		GrowthAreas: []GrowthArea{
			{Area: "Solo focus", Tip: "Block one hour of alone-work before any group time.", Why: "Your ideas get sharper when they form before they're shared."},
			{Area: "Saying no", Tip: "Decline one request this week without over-explaining.", Why: "Protecting your time keeps your yes meaningful."},
		},
		Archetype: &Archetype{Name: "The Spark", Motto: "Great things happen between people.", Power: "Making strangers into teammates", Strength: "Energy"},
	},
	bank.CategoryEmpathy: {
		Key:         bank.CategoryEmpathy,
		Title:       "The Supporter",
		Description: "You understand and care about others deeply",
		Strengths:   []string{"Emotional intelligence", "Conflict resolution", "Trust-building", "Listening"},
		WatchOuts:   []string{"May absorb others' stress", "Could neglect own needs"},
		Patterns:    "You pick up on subtle cues others miss. People naturally open up to you.",
		NextSteps:   "Help someone this week, but also set one boundary to protect your energy.",
		CareerPaths: []string{"Counselling", "Healthcare", "Human resources", "Social work"},
		GrowthAreas: []GrowthArea{
			{Area: "Boundaries", Tip: "Before helping, ask yourself what it will cost you this week.", Why: "Sustainable care requires a full tank."},
			{Area: "Hard feedback", Tip: "Deliver one honest, kind piece of criticism.", Why: "Real support sometimes means saying the uncomfortable thing."},
		},
		Archetype: &Archetype{Name: "The Anchor", Motto: "People remember how you made them feel.", Power: "Hearing what isn't said", Strength: "Trust"},
	},
	bank.CategoryCuriosity: {
		Key:         bank.CategoryCuriosity,
		Title:       "The Explorer",
		Description: "You love learning and trying new things",
		Strengths:   []string{"Adaptability", "Innovation", "Quick learning", "Open-mindedness"},
		WatchOuts:   []string{"May start many things without finishing", "Can get overwhelmed by options"},
		Patterns:    "You're naturally drawn to new experiences. You enjoy experimenting and discovering.",
		NextSteps:   "Choose one new skill or topic and commit to learning it for 30 minutes this week.",
		CareerPaths: []string{"Product design", "Journalism", "Entrepreneurship", "Science"},
		GrowthAreas: []GrowthArea{
			{Area: "Finishing", Tip: "Pick one started project and ship a rough version this week.", Why: "Done teaches you things that started never will."},
			{Area: "Depth", Tip: "Spend a second week on a topic you'd normally leave after one.", Why: "The interesting parts usually hide past the introduction."},
		},
		Archetype: &Archetype{Name: "The Pathfinder", Motto: "What's behind that door?", Power: "Learning anything fast", Strength: "Range"},
	},
	bank.CategoryFocus: {
		Key:         bank.CategoryFocus,
		Title:       "The Distracted",
		Description: "You struggle with maintaining concentration",
		Strengths:   []string{"Aware of the challenge", "Multitasking ability", "Flexible attention"},
		WatchOuts:   []string{"Reduced productivity", "Incomplete tasks", "Stress from switching"},
		Patterns:    "Digital distractions pull your attention frequently. Deep work feels challenging.",
		NextSteps:   "Try one 25-minute focused work session with phone in another room.",
		CareerPaths: []string{"Fast-paced coordination roles", "Support and triage", "Creative brainstorming"},
		GrowthAreas: []GrowthArea{
			{Area: "Environment design", Tip: "Remove one recurring distraction from your workspace for a week.", Why: "Willpower loses to environment; change the environment instead."},
			{Area: "Single-tasking", Tip: "Write the one thing you're doing on paper and keep it visible.", Why: "A visible anchor pulls wandering attention back."},
		},
		Archetype: &Archetype{Name: "The Juggler", Motto: "Everything is interesting.", Power: "Noticing everything at once", Strength: "Breadth of attention"},
	},
	bank.CategoryCivic: {
		Key:         bank.CategoryCivic,
		Title:       "The Contributor",
		Description: "You care about your community and take action",
		Strengths:   []string{"Social responsibility", "Initiative", "Environmental awareness", "Leadership"},
		WatchOuts:   []string{"May feel frustrated by others' inaction", "Can burn out"},
		Patterns:    "You notice what needs fixing and feel motivated to act. Small actions matter to you.",
		NextSteps:   "Take one small civic action this week (pick up litter, help a neighbor, report an issue).",
		CareerPaths: []string{"Public service", "Non-profit work", "Urban planning", "Environmental science"},
		GrowthAreas: []GrowthArea{
			{Area: "Pacing", Tip: "Commit to one cause deeply instead of three shallowly.", Why: "Sustained pressure moves more than scattered pushes."},
			{Area: "Recruiting", Tip: "Invite one friend to join your next action.", Why: "Causes grow through people, not just effort."},
		},
		Archetype: &Archetype{Name: "The Steward", Motto: "Someone has to start.", Power: "Seeing what a place could be", Strength: "Initiative"},
	},
	bank.CategoryResponsibility: {
		Key:         bank.CategoryResponsibility,
		Title:       "The Accountable",
		Description: "You own your actions and their consequences",
		Strengths:   []string{"Integrity", "Trustworthiness", "Growth mindset", "Maturity"},
		WatchOuts:   []string{"May be too hard on yourself", "Could take blame unnecessarily"},
		Patterns:    "You don't make excuses. You learn from mistakes and move forward.",
		NextSteps:   "Acknowledge one recent mistake, identify the lesson, and move on without guilt.",
		CareerPaths: []string{"Quality assurance", "Finance", "Law", "Team leadership"},
		GrowthAreas: []GrowthArea{
			{Area: "Self-compassion", Tip: "Write the advice you'd give a friend who made your last mistake.", Why: "You extend others a fairness you deny yourself."},
			{Area: "Shared ownership", Tip: "Name one failure that was genuinely a team outcome, not yours alone.", Why: "Carrying everything teaches others to carry nothing."},
		},
		Archetype: &Archetype{Name: "The Keeper", Motto: "My word is the contract.", Power: "Being the person others count on", Strength: "Integrity"},
	},
	bank.CategoryDecisiveness: {
		Key:         bank.CategoryDecisiveness,
		Title:       "The Hesitant",
		Description: "You weigh options carefully, sometimes too much",
		Strengths:   []string{"Thoughtful", "Risk-aware", "Considers consequences"},
		WatchOuts:   []string{"Analysis paralysis", "Missed opportunities", "Decision fatigue"},
		Patterns:    "You fear making the wrong choice. You seek more information before committing.",
		NextSteps:   "Make one small decision quickly this week (under 2 minutes). Notice what happens.",
		CareerPaths: []string{"Risk assessment", "Editing and review", "Compliance", "Advisory roles"},
		GrowthAreas: []GrowthArea{
			{Area: "Reversible-first", Tip: "Label each decision reversible or not before weighing it.", Why: "Reversible decisions deserve minutes, not days."},
			{Area: "Good enough", Tip: "Pick the first option that meets your needs, not the best imaginable one.", Why: "Optimizing every choice costs more than a slightly better outcome returns."},
		},
		Archetype: &Archetype{Name: "The Weigher", Motto: "Measure twice, cut once.", Power: "Spotting the risk everyone missed", Strength: "Care"},
	},
	bank.CategoryAdaptability: {
		Key:         bank.CategoryAdaptability,
		Title:       "The Flexible",
		Description: "You adjust to new situations with ease",
		Strengths:   []string{"Resilience", "Problem-solving", "Creativity", "Stress management"},
		WatchOuts:   []string{"May lack consistency", "Could avoid planning"},
		Patterns:    "When plans change, you pivot easily. You see alternatives others miss.",
		NextSteps:   "When something doesn't work this week, try a different approach immediately.",
		CareerPaths: []string{"Consulting", "Emergency response", "Startups", "Field work"},
		GrowthAreas: []GrowthArea{
			{Area: "Consistency", Tip: "Keep one small routine unchanged for two weeks.", Why: "Stable anchors make your flexibility a choice, not a drift."},
			{Area: "Planning ahead", Tip: "Sketch a plan A before you improvise a plan B.", Why: "Improvising from a plan beats improvising from nothing."},
		},
		Archetype: &Archetype{Name: "The Shapeshifter", Motto: "There's always another way.", Power: "Landing on your feet", Strength: "Resilience"},
	},
	bank.CategoryBalanced: {
		Key:         bank.CategoryBalanced,
		Title:       "The Balanced",
		Description: "You show a mix of different strengths",
		Strengths:   []string{"Versatile", "Adaptable", "Well-rounded perspective"},
		WatchOuts:   []string{"May lack a standout strength", "Could feel unclear about direction"},
		Patterns:    "You bring multiple perspectives to situations. No single style dominates.",
		NextSteps:   "Reflect on which situations energize you most—that's your hidden strength.",
		CareerPaths: []string{"General management", "Coordination roles", "Generalist positions"},
		GrowthAreas: []GrowthArea{
			{Area: "Finding an edge", Tip: "Track which tasks you finish fastest for two weeks.", Why: "A hidden specialty usually shows up in what feels easy."},
		},
		Archetype: &Archetype{Name: "The All-Rounder", Motto: "A bit of everything, ready for anything.", Power: "Fitting into any team", Strength: "Versatility"},
	},
}

// #endregion catalog-en
