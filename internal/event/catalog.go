package event

// DefaultCatalog is the built-in encounter set used when no external
// catalog is supplied.
func DefaultCatalog() []Event {
	return []Event{
		{
			ID:      "derelict_freighter",
			Title:   "Derelict Freighter",
			Text:    "Sensors pick up a drifting cargo hauler, power signature cold for decades.",
			Context: "travel",
			Weight:  2,
			Choices: []Choice{
				{
					Text: "Board and salvage",
					Outcomes: []Outcome{
						{
							Chance: 0.6, Text: "The holds are intact. Your teams strip everything useful.",
							Effects: []Effect{
								{Type: "materials", Value: 25},
								{Type: "fuel", Value: 10},
							},
						},
						{
							Chance: 0.4, Text: "A ruptured reactor floods the boarding party's deck with radiation.",
							Effects: []Effect{
								{Type: "materials", Value: 10},
								{Type: "morale", Value: -5},
							},
						},
					},
				},
				{
					Text: "Scan from a distance and move on",
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "The logs you pull remotely add a little to the technical archive.",
							Effects: []Effect{{Type: "technology", Value: 5}},
						},
					},
				},
			},
		},
		{
			ID:      "distress_signal",
			Title:   "Distress Signal",
			Text:    "A faint beacon repeats on an old colonial frequency. Someone is alive out there.",
			Context: "travel",
			Weight:  2,
			Choices: []Choice{
				{
					Text:         "Divert and assist",
					Requirements: []Requirement{{Resource: "fuel", Operator: ">=", Value: 10}},
					Outcomes: []Outcome{
						{
							Chance: 0.5, Text: "Grateful survivors share supplies from their lifeboat caches.",
							Effects: []Effect{
								{Type: "fuel", Value: -10},
								{Type: "food", Value: 20},
								{Type: "morale", Value: 10},
							},
						},
						{
							Chance: 0.3, Text: "The beacon was automated. The wreck holds nothing but dust.",
							Effects: []Effect{{Type: "fuel", Value: -10}},
						},
						{
							Chance: 0.2, Text: "It was bait. You fight clear of a pirate ambush.",
							Effects: []Effect{
								{Type: "fuel", Value: -10},
								{Type: "materials", Value: -10},
								{Type: "morale", Value: -5},
							},
							Unlocks: []string{"pirate_vendetta"},
						},
					},
				},
				{
					Text: "Log the position and keep course",
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "The crew says nothing, but the silence on the bridge is heavy.",
							Effects: []Effect{
								{Type: "morale", Value: -5},
								{Type: "character", Character: "chen", Value: -5},
							},
						},
					},
				},
			},
		},
		{
			ID:                "pirate_vendetta",
			Title:             "Old Grudges",
			Text:              "The pirates you escaped have put a bounty on your hull. A lone interceptor shadows you.",
			Context:           "travel",
			PrerequisiteFlags: []string{"event_pirate_vendetta_unlocked"},
			Choices: []Choice{
				{
					Text: "Pay them off",
					Requirements: []Requirement{{Resource: "materials", Operator: ">=", Value: 30}},
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "The bounty is cleared. Expensive, but bloodless.",
							Effects: []Effect{{Type: "materials", Value: -30}},
						},
					},
				},
				{
					Text: "Run silent through a debris field",
					Outcomes: []Outcome{
						{
							Chance: 0.7, Text: "You lose them in the clutter.",
							Effects: []Effect{{Type: "fuel", Value: -5}},
						},
						{
							Chance: 0.3, Text: "Debris scrapes the hull before you shake pursuit.",
							Effects: []Effect{
								{Type: "fuel", Value: -5},
								{Type: "materials", Value: -15},
							},
						},
					},
				},
			},
		},
		{
			ID:      "stowaway",
			Title:   "Stowaway",
			Text:    "Security finds a teenager hiding in a cargo pod, smuggled aboard at the last station.",
			Context: "system",
			Choices: []Choice{
				{
					Text: "Take them in",
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "Another mouth to feed, and a small lift in the ship's spirit.",
							Effects: []Effect{
								{Type: "food", Value: -10},
								{Type: "morale", Value: 5},
								{Type: "flag", Flag: "stowaway_aboard", Value: 1},
							},
						},
					},
				},
				{
					Text: "Hand them to station authorities",
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "Rules are rules. Some of the crew avoid your eyes for days.",
							Effects: []Effect{
								{Type: "morale", Value: -5},
								{Type: "character", Character: "okafor", Value: -10},
							},
						},
					},
				},
			},
		},
		{
			ID:         "solar_flare",
			Title:      "Solar Flare",
			Text:       "The local star throws a flare across your course. Shielding will take the brunt.",
			Context:    "system",
			Repeatable: true,
			Choices: []Choice{
				{
					Text: "Ride it out behind the planet's shadow",
					Outcomes: []Outcome{
						{
							Chance: 0.7, Text: "The shadow holds. You lose a little time, nothing more.",
							Effects: []Effect{{Type: "fuel", Value: -5}},
						},
						{
							Chance: 0.3, Text: "A secondary burst catches the ship broadside.",
							Effects: []Effect{
								{Type: "fuel", Value: -5},
								{Type: "materials", Value: -10},
							},
						},
					},
				},
				{
					Text: "Burn hard out of the system",
					Requirements: []Requirement{{Resource: "fuel", Operator: ">=", Value: 15}},
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "Expensive, but the ship clears the flare untouched.",
							Effects: []Effect{{Type: "fuel", Value: -15}},
						},
					},
				},
			},
		},
		{
			ID:      "ancient_beacon",
			Title:   "Ancient Beacon",
			Text:    "A structure older than any human colony pulses with patterned light. It is... indexing you.",
			Context: "system",
			Weight:  0.5,
			Choices: []Choice{
				{
					Text: "Let the science team interface",
					Outcomes: []Outcome{
						{
							Chance: 0.5, Text: "The beacon unfolds a fragment of its archive into your computers.",
							Effects: []Effect{
								{Type: "technology", Value: 30},
								{Type: "flag", Flag: "architect_contact", Value: 1},
							},
						},
						{
							Chance: 0.5, Text: "The interface rejects you. Half the lab equipment is slagged.",
							Effects: []Effect{
								{Type: "technology", Value: 5},
								{Type: "materials", Value: -15},
							},
						},
					},
				},
				{
					Text: "Mark it on the charts and withdraw",
					Outcomes: []Outcome{
						{Chance: 1, Text: "Some doors are better left closed."},
					},
				},
			},
		},
		{
			ID:         "ration_dispute",
			Title:      "Ration Dispute",
			Text:       "Two mess stewards come to blows over shorted rations. The galley takes sides.",
			Context:    "random",
			Repeatable: true,
			Requirements: []Requirement{{Resource: "food", Operator: "<", Value: 50}},
			Choices: []Choice{
				{
					Text: "Open the reserve stores",
					Requirements: []Requirement{{Resource: "food", Operator: ">=", Value: 20}},
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "Full plates quiet the galley faster than any speech.",
							Effects: []Effect{
								{Type: "food", Value: -20},
								{Type: "morale", Value: 10},
							},
						},
					},
				},
				{
					Text: "Enforce the ration schedule",
					Outcomes: []Outcome{
						{
							Chance: 1, Text: "Order holds, barely.",
							Effects: []Effect{{Type: "morale", Value: -5}},
						},
					},
				},
			},
		},
	}
}
