package wellness

import (
	"fmt"
	"strings"
)

// System instructions for the text-generation collaborator. Model identity is
// provider configuration; these only describe the task.

const crisisSystemInstruction = "You are a mental health crisis detection system. Analyze text for signs of mental health crisis with high sensitivity to protect user safety."

const therapySystemInstruction = `You are a compassionate, professional AI wellness therapist. Provide supportive, therapeutic responses that:

1. Validate emotions and experiences
2. Ask thoughtful follow-up questions
3. Offer practical coping strategies when appropriate
4. Maintain professional boundaries
5. Encourage healthy behaviors and self-care
6. Recognize when issues may need professional human intervention

Keep responses conversational, empathetic, and under 200 words. If the user expresses thoughts of self-harm or suicide, provide crisis resources and encourage immediate professional help.`

const insightSystemInstruction = "You are a certified wellness coach and health expert. Provide personalized, actionable wellness insights based on biometric data. Focus on positive reinforcement and practical recommendations. Be encouraging and supportive."

func buildCrisisPrompt(message string) string {
	return fmt.Sprintf(`Analyze this message for crisis indicators and mental health concerns. Respond in JSON format:

Message: %q

Evaluate for:
- Signs of self-harm or suicidal ideation
- Severe depression or anxiety
- Emotional crisis
- Substance abuse references
- Relationship violence

Provide assessment as JSON:
{
  "isCrisis": boolean,
  "severity": "low|medium|high|critical",
  "type": "emotional|anxiety|depression|suicidal",
  "confidence": number (0-1)
}`, message)
}

func buildTherapyContext(sctx SessionContext) string {
	mood := sctx.Mood
	if mood == "" {
		mood = "unknown"
	}
	topics := "none"
	if len(sctx.RecentTopics) > 0 {
		topics = strings.Join(sctx.RecentTopics, ", ")
	}
	sessionType := sctx.SessionType
	if sessionType == "" {
		sessionType = "general"
	}
	return fmt.Sprintf(`Context:
- Current mood: %s
- Recent session topics: %s
- Session type: %s`, mood, topics, sessionType)
}

func buildInsightPrompt(data BiometricData) string {
	return fmt.Sprintf(`Analyze this wellness data and provide personalized insights and recommendations in JSON format:

Heart Rate: %s BPM
Sleep: %s hours, Quality: %s%%
Stress Level: %s%%
Steps: %s
Mood: %s
Recent Activities: %s

Provide a wellness analysis with:
- overall_score (0-100): Overall wellness score
- insights: Array of specific insights about the data
- recommendations: Specific recommendations for sleep, stress, activity, and nutrition

Format as JSON with this structure:
{
  "overall_score": number,
  "insights": [
    {
      "type": "recommendation|achievement|concern",
      "title": "string",
      "description": "string",
      "action": "string (optional)",
      "priority": "low|medium|high"
    }
  ],
  "recommendations": {
    "sleep": "string",
    "stress": "string",
    "activity": "string",
    "nutrition": "string"
  }
}`,
		fmtIntField(data.HeartRate),
		fmtFloatField(data.SleepHours),
		fmtIntField(data.SleepQuality),
		fmtIntField(data.StressLevel),
		fmtIntField(data.Steps),
		fmtStringField(data.Mood),
		fmtActivities(data.RecentActivities))
}

func fmtIntField(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtFloatField(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *v)
}

func fmtStringField(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

func fmtActivities(activities []string) string {
	if len(activities) == 0 {
		return "None"
	}
	return strings.Join(activities, ", ")
}
