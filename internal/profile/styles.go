package profile

import "github.com/seedlinghq/seedling-engine/internal/scoring"

// #region style-catalog

var styleCatalog = map[scoring.Style]StyleProfile{
	scoring.StyleExecutive: {
		Style:    scoring.StyleExecutive,
		Headline: "Outcome driver with structure and ownership",
		Strengths: []string{
			"Turns ambiguity into clear steps and closure",
			"Reliable execution with calm decision-making",
			"Comfortable taking responsibility and aligning others",
		},
		Watchout: "Directness can sometimes sound blunt—pair clarity with warmth.",
		Resume:   "Structured, execution-oriented professional who takes ownership, organizes work into clear steps, and delivers outcomes reliably. Comfortable coordinating with stakeholders, making fact-based decisions, and driving closure under deadlines.",
		Bullets: []string{
			"Owned task planning and execution to deliver outcomes on time",
			"Translated unclear requirements into structured steps and priorities",
			"Aligned stakeholders on responsibilities and timelines to ensure closure",
		},
	},
	scoring.StyleBuilder: {
		Style:    scoring.StyleBuilder,
		Headline: "Hands-on doer who learns by building",
		Strengths: []string{
			"Learns quickly through practical implementation",
			"Moves ideas into tangible outputs and prototypes",
			"Stays focused on what works in the real world",
		},
		Watchout: "Avoid skipping documentation—make your work easy to understand and reuse.",
		Resume:   "Hands-on problem solver who learns by building, iterating, and shipping practical solutions. Comfortable experimenting, debugging, and converting concepts into working outcomes with clear ownership.",
		Bullets: []string{
			"Built and iterated on solutions through hands-on experimentation",
			"Implemented features/prototypes and validated with real use-cases",
			"Improved reliability by debugging issues and refining implementation",
		},
	},
	scoring.StyleAnalyst: {
		Style:    scoring.StyleAnalyst,
		Headline: "Logic-led thinker with strong scenario awareness",
		Strengths: []string{
			"Breaks down complex problems and evaluates options",
			"Thinks ahead about risks, impacts, and edge cases",
			"Uses evidence and logic to make sound decisions",
		},
		Watchout: "Avoid analysis-paralysis—set decision deadlines and act on “enough” data.",
		Resume:   "Analytical, evidence-driven problem solver who breaks down complexity, anticipates outcomes, and makes structured decisions. Strong at reasoning, prioritization, and translating analysis into actionable plans.",
		Bullets: []string{
			"Analyzed alternatives and selected practical approaches using evidence",
			"Anticipated risks/edge cases and proposed mitigations early",
			"Converted analysis into clear action steps for execution",
		},
	},
	scoring.StyleConnector: {
		Style:    scoring.StyleConnector,
		Headline: "People-aware collaborator who lifts teams",
		Strengths: []string{
			"Builds trust, listens well, and supports others",
			"Improves collaboration and team clarity",
			"Helps translate ideas so teams move together",
		},
		Watchout: "Don’t over-accommodate—practice clear boundaries and decisive communication.",
		Resume:   "Collaborative, people-aware professional who builds trust, communicates clearly, and supports teamwork. Strong at coordination, empathy-led problem solving, and aligning people toward outcomes.",
		Bullets: []string{
			"Supported teamwork through clear communication and proactive coordination",
			"Helped peers by explaining concepts and unblocking progress",
			"Improved collaboration by considering team dynamics and impact",
		},
	},
	scoring.StyleExplorer: {
		Style:    scoring.StyleExplorer,
		Headline: "Curiosity-driven learner who finds new paths",
		Strengths: []string{
			"High curiosity and fast learning across topics",
			"Generates new ideas and alternative approaches",
			"Comfortable exploring uncertainty and experimenting",
		},
		Watchout: "Channel curiosity into finish-lines—pick a goal and complete it before jumping.",
		Resume:   "Curiosity-driven learner who explores ideas, experiments with approaches, and adapts quickly. Brings fresh perspectives to problem solving—best when paired with clear goals and delivery checkpoints.",
		Bullets: []string{
			"Learned new concepts independently and applied them to practical problems",
			"Experimented with alternative approaches and evaluated outcomes",
			"Adapted quickly to new information and iterated toward improvements",
		},
	},
}

// #endregion style-catalog
