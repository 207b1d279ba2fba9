package services

import (
	"fmt"
	"strings"

	"github.com/vytal-health/DashboardBack/internal/models"
)

// The canned response table. Each builder renders one topic's paragraph with
// the user's own numbers filled in.
var replyBuilders = map[Topic]func(*models.Profile) (string, []string){
	TopicCholesterol:  cholesterolReply,
	TopicInflammation: inflammationReply,
	TopicNutrition:    nutritionReply,
	TopicProgress:     progressReply,
	TopicMotivation:   motivationReply,
	TopicGeneral:      generalReply,
}

func biomarkerValue(profile *models.Profile, key string) float64 {
	if marker, ok := profile.Biomarkers[key]; ok {
		return marker.Value
	}
	return 0
}

func cholesterolReply(profile *models.Profile) (string, []string) {
	ldl := profile.Biomarkers["ldl"]
	statusLabel := "Borderline"
	if ldl.Status == models.StatusHigh {
		statusLabel = "Elevated ⚠️"
	}

	content := fmt.Sprintf(`Great question! Let me explain your LDL result.

**Your number: %g mg/dL**
• Optimal: <100 mg/dL
• Your status: %s

**What LDL is:**
LDL (Low-Density Lipoprotein) carries cholesterol to your artery walls. When there's too much, it can build up as plaque, narrowing your arteries over time.

**Why yours is elevated:**
Looking at your full profile, your elevated LDL combined with high hs-CRP (%g mg/L) suggests inflammation is actively promoting plaque buildup. This is the pattern we're targeting.

**Your action plan addresses this:**
• **Fiber** → Binds to cholesterol, prevents absorption
• **Fish oil** → Reduces inflammation (hs-CRP)
• **Post-meal walks** → Improves lipid metabolism

**Expected improvement:**
With 70%%+ consistency, you could see LDL drop to ~105-115 mg/dL in 90 days.`,
		ldl.Value, statusLabel, biomarkerValue(profile, "hsCRP"))

	return content, []string{
		"How does fiber lower cholesterol?",
		"What about medications like statins?",
		"Show me my APO-B result",
	}
}

func inflammationReply(profile *models.Profile) (string, []string) {
	content := fmt.Sprintf(`Inflammation is a crucial concept. Let me break it down.

**Your hs-CRP: %g mg/L**
• Optimal: <1 mg/L
• Moderate risk: 1-3 mg/L
• High risk: >3 mg/L
• Your status: Elevated ⚠️

**What inflammation is:**
Think of chronic inflammation as a slow-burning fire inside your body. A little is normal (it's how your body heals). But when it stays elevated, it damages tissues—especially blood vessels.

**Why this matters for you:**
Chronic inflammation:
1. Damages artery walls, making them sticky for cholesterol
2. Makes existing plaque unstable (heart attack risk)
3. Worsens insulin resistance
4. Accelerates biological aging

**Your plan targets this directly:**
• Fish oil → Strong anti-inflammatory
• Sleep optimization → Reduces inflammatory markers
• Post-meal walks → Reduces glucose spikes (which drive inflammation)`,
		biomarkerValue(profile, "hsCRP"))

	return content, []string{
		"How long until my hs-CRP improves?",
		"What foods cause inflammation?",
		"Tell me about sleep and inflammation",
	}
}

func nutritionReply(_ *models.Profile) (string, []string) {
	content := `Based on your goals, here are your power foods:

**🟢 PRIORITIZE THESE:**

**Fiber-Rich Foods** (target: 25-35g/day)
• Oatmeal, beans, lentils, apples
• Why: Binds cholesterol, improves gut health

**Omega-3 Sources**
• Salmon, mackerel, sardines (3x/week)
• Walnuts, chia seeds, flaxseed
• Why: Powerful anti-inflammatory

**Colorful Vegetables**
• Leafy greens, broccoli, peppers
• Why: Antioxidants combat oxidation

**Healthy Fats**
• Olive oil, avocados, nuts
• Why: Supports HDL, reduces inflammation

**🔴 REDUCE OR AVOID:**
• **Refined carbs**: White bread, pasta, pastries
• **Added sugars**: Sodas, candy, many packaged foods
• **Processed meats**: Bacon, sausage, deli meats
• **Excess alcohol**: Limit to 3 drinks/week

**🍽️ SAMPLE DINNER TONIGHT:**
Salmon fillet, roasted broccoli and peppers, a side of quinoa, drizzled with olive oil. This single meal hits fiber, omega-3s, and antioxidants! 🎯`

	return content, []string{
		"What about breakfast options?",
		"Can I have coffee?",
		"How much protein do I need?",
	}
}

func progressReply(profile *models.Profile) (string, []string) {
	completed := profile.CompletedToday()
	total := len(profile.Actions)
	consistency := CompletionRate(profile)

	consistencyMark := "⚠️"
	if consistency >= 70 {
		consistencyMark = "✓"
	}
	streakMark := ""
	if profile.Streak >= 7 {
		streakMark = " 🔥"
	}
	daysActive := profile.DaysActive
	if daysActive < 1 {
		daysActive = 1
	}

	var breakdown strings.Builder
	for _, action := range profile.Actions {
		state := "⏳ Pending"
		if action.TodayStatus == models.ActionCompleted {
			state = "✅ Done"
		}
		fmt.Fprintf(&breakdown, "• %s %s: %s (%d day streak)\n", action.Icon, action.Name, state, action.Streak)
	}

	assessment := "There's room to improve. Remember, consistency beats perfection. Even completing 3 out of 4 actions is better than skipping entirely."
	if consistency >= 70 {
		assessment = "You're doing great! At this pace, you're on track to see meaningful biomarker improvements by Day 90. Keep it up!"
	}

	content := fmt.Sprintf(`Let me check your progress... 📊

**Day %d Summary:**

• Overall consistency: **%d%%** %s
• Current streak: **%d days**%s
• Actions completed today: **%d/%d**

**Action Breakdown:**
%s
**My Assessment:**
%s`,
		daysActive, consistency, consistencyMark, profile.Streak, streakMark, completed, total, breakdown.String(), assessment)

	return content, []string{
		"How can I improve my consistency?",
		"What if I miss a day?",
		"When should I retest?",
	}
}

func motivationReply(profile *models.Profile) (string, []string) {
	daysActive := profile.DaysActive
	if daysActive < 1 {
		daysActive = 1
	}

	content := fmt.Sprintf(`I hear you. Building new habits is genuinely hard—anyone who says otherwise hasn't tried. 💪

**First, some perspective:**
Week 2-3 is often the hardest. The novelty has worn off, but the habits aren't automatic yet. This is completely normal.

**Your current stats:**
• %d days in
• Consistency: %d%%
• Current streak: %d days

**What might help:**

1. **Shrink the actions** — instead of a 10-min walk, commit to 5 min. Completion beats perfection.
2. **Stack habits** — attach new habits to existing ones: "After I brush my teeth, I take my fish oil."
3. **Identify the blocker** — time, forgetting, energy, or motivation each have a different fix.
4. **Celebrate small wins** — 2 out of 4 today isn't failure, it's 50%% progress. It compounds.

**Remember:**
Every day you show up—even imperfectly—you're building something. Your future self is counting on you. 🌱`,
		daysActive, profile.Consistency, profile.Streak)

	return content, []string{
		"Help me simplify my plan",
		"Set up better reminders",
		"Remind me why this matters",
	}
}

func generalReply(profile *models.Profile) (string, []string) {
	content := fmt.Sprintf(`Thanks for your question! Let me help with that.

Based on your health profile, I can see you're working on:
• Lowering cardiovascular risk (LDL: %g, hs-CRP: %g)
• Managing metabolic health (Glucose: %g, HbA1c: %g)

I'm here to help you understand your biomarkers, answer questions about your action plan, or provide motivation when you need it.

**Try asking me about:**
• Any specific biomarker (LDL, hs-CRP, glucose, etc.)
• Why certain actions are in your plan
• Food and nutrition guidance
• Your progress and projections
• Tips for staying consistent

What would you like to explore?`,
		biomarkerValue(profile, "ldl"), biomarkerValue(profile, "hsCRP"),
		biomarkerValue(profile, "glucose"), biomarkerValue(profile, "hba1c"))

	return content, []string{
		"Explain my cardiovascular risk",
		"What should I eat today?",
		"How am I progressing?",
	}
}
