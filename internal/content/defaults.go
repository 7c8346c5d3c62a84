// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import "vetlaunch/internal/models"

// DefaultCurriculum is the fixed ten-week program outline shown when no CMS
// record overrides a given week.
var DefaultCurriculum = []models.CurriculumItem{
	{WeekNumber: 1, Title: "Mission Brief & Mindset", Description: "Orientation, cohort introductions, and translating military experience into an entrepreneurial operating picture.", Icon: "compass"},
	{WeekNumber: 2, Title: "Opportunity Recon", Description: "Identifying customer problems worth solving and sizing the market around them.", Icon: "binoculars"},
	{WeekNumber: 3, Title: "Customer Discovery", Description: "Interview techniques and field work: talking to real buyers before building anything.", Icon: "chat"},
	{WeekNumber: 4, Title: "Value Proposition Design", Description: "Shaping an offer that matches what discovery actually surfaced.", Icon: "target"},
	{WeekNumber: 5, Title: "Business Model Foundations", Description: "Revenue models, cost structure, and unit economics for a first venture.", Icon: "grid"},
	{WeekNumber: 6, Title: "Branding & Story", Description: "Positioning, naming, and telling a founder story that earns trust.", Icon: "flag"},
	{WeekNumber: 7, Title: "Marketing & First Customers", Description: "Low-budget acquisition channels and landing the first ten customers.", Icon: "megaphone"},
	{WeekNumber: 8, Title: "Finance & Funding Paths", Description: "Bookkeeping basics, veteran-focused grants and loans, and when (not) to raise.", Icon: "bank"},
	{WeekNumber: 9, Title: "Legal & Operations", Description: "Entity formation, contracts, licenses, and setting up day-to-day operations.", Icon: "scale"},
	{WeekNumber: 10, Title: "Pitch Week", Description: "Final pitch preparation and demo day in front of mentors and investors.", Icon: "rocket"},
}

// DefaultQualifications is the fixed eligibility list for the
// qualifications page.
var DefaultQualifications = []models.Qualification{
	{Position: 1, Title: "Veteran or Transitioning Service Member", Description: "Any branch, any era. Guard and Reserve included. Military spouses are welcome to apply.", Icon: "star"},
	{Position: 2, Title: "A Business Idea — or the Drive to Find One", Description: "You do not need a finished plan. You need a problem you care about and the will to work it.", Icon: "bulb"},
	{Position: 3, Title: "Time Commitment", Description: "Roughly eight hours per week for ten weeks, including one live evening session.", Icon: "clock"},
	{Position: 4, Title: "Coachability", Description: "Willingness to test assumptions with real customers and change course when the evidence says so.", Icon: "refresh"},
	{Position: 5, Title: "No Cost to You", Description: "The program is fully funded by donors. We ask only that alumni give back as mentors.", Icon: "heart"},
}

// DefaultFAQs is the fixed question list for the apply page.
var DefaultFAQs = []models.FAQ{
	{Position: 1, Question: "Does the program cost anything?", Answer: "No. The program is donor-funded and free for every accepted veteran."},
	{Position: 2, Question: "Is the program remote or in person?", Answer: "Sessions run live online, with an optional in-person demo day at the end of the cohort."},
	{Position: 3, Question: "I'm still on active duty. Can I apply?", Answer: "Yes — transitioning service members within 12 months of separation are eligible."},
	{Position: 4, Question: "Do I need a business idea already?", Answer: "No. Several weeks of the curriculum are devoted to finding and validating an idea."},
	{Position: 5, Question: "What happens after the ten weeks?", Answer: "Alumni join the mentor network and keep access to office hours, templates, and the investor list."},
	{Position: 6, Question: "When is the application deadline?", Answer: "Applications close four weeks before each cohort starts. Dates are posted on the apply page."},
}

// DefaultSplash drives the splash page when no CMS record configures it.
var DefaultSplash = models.SplashConfig{
	Headline:         "Your Next Mission Starts Here",
	CountdownSeconds: 8,
	RedirectPath:     "/home",
	SkipLabel:        "Enter Site",
}
