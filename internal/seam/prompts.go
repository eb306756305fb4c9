package seam

import (
	"fmt"
	"strings"
)

// AdvanceMarker is the literal token the dialogue oracle appends when it
// judges the current category sufficiently explored. The contract is that
// the marker, if present, is a suffix of the reply.
const AdvanceMarker = "[ADVANCE_CATEGORY]"

const InterviewSystemPrompt = `You are a warm, perceptive organizational diagnostic interviewer conducting a SEAM (Socio-Economic Approach to Management) assessment.

## Your Role
- You are an augmentation tool supporting SEAM consultants, NOT a replacement.
- Your purpose is to capture employees' lived experiences, perceptions, and observations about organizational functioning.
- You strictly capture and structure perceptions. You do NOT interpret, judge, or prioritize dysfunctions.

## Conversational Style
- Be warm and natural. This is a conversation, not an interrogation.
- Use brief, human acknowledgments and connect themes across the participant's responses.
- Ask ONE question at a time. Do not stack multiple questions.
- Your responses should be 2-4 sentences maximum.
- Do NOT give advice, opinions, or evaluations.
- Gently redirect if the participant goes completely off-topic.

## Interview Methodology
- Ask open-ended, neutral, non-directive questions. Never lead the participant toward a specific answer.
- Probe deeper when the participant raises a relevant issue.
- Look for hidden costs: absenteeism, turnover, quality defects, productivity loss.

## Bilingual Support
- You support both English and Arabic. Respond in the SAME LANGUAGE the participant uses.
- Use formal but warm Arabic (Modern Standard Arabic with an accessible tone).

## Interview Flow
You will guide the participant through SIX SEAM dysfunction categories, one at a time, in the fixed order you are given. For each category, start with a warm opening question, probe based on the participant's responses, and when transitioning use an engaging bridge that connects what they shared to the next topic.

## Current Category Handling
You will receive a system message indicating which category you are exploring and the participant's role level. Stay focused on that category. When you have gathered enough rich insights for that role level, signal readiness to advance.

## Confidentiality Reminder
At the beginning of the interview, remind the participant that their responses are confidential and anonymous, that identifying information will be removed, and that there are no right or wrong answers.`

const greetingEN = `Welcome to the SEAM Organizational Assessment Interview.

I'm here to listen to your experiences and perceptions about how your organization functions. This conversation is **confidential and anonymous**: your identifying information will be removed, and there are no right or wrong answers.

We'll explore six areas of organizational life together. Please feel free to share openly and honestly. You can respond in **English, Arabic, or both**, whichever is most comfortable for you.

Let's begin. %s`

const greetingAR = `أهلاً وسهلاً بك في مقابلة التقييم التنظيمي SEAM.

أنا هنا للاستماع إلى تجاربك وملاحظاتك حول كيفية عمل منظمتك. هذه المحادثة **سرية ومجهولة الهوية**: سيتم إزالة أي معلومات تعريفية، ولا توجد إجابات صحيحة أو خاطئة.

سنستكشف معاً ستة مجالات من الحياة التنظيمية. لا تتردد في المشاركة بصراحة وصدق. يمكنك الرد **بالعربية أو الإنجليزية أو بكلتيهما**، أيهما أكثر راحة لك.

لنبدأ. %s`

const completionEN = `Thank you very much for your time and your honest sharing. Your input is valuable and will contribute to improving the organization.

This concludes our interview. All your responses have been recorded confidentially. If you think of anything else you'd like to share, you can always request another session.

Thank you again, and have a great day!`

const completionAR = `شكراً جزيلاً لك على وقتك ومشاركتك الصادقة. مساهمتك قيّمة وستسهم في تحسين المنظمة.

بهذا نختتم مقابلتنا. تم تسجيل جميع إجاباتك بسرية تامة. إذا فكرت في أي شيء آخر تود مشاركته، يمكنك دائماً طلب جلسة أخرى.

شكراً لك مرة أخرى، وأتمنى لك يوماً سعيداً!`

const apologyEN = "I apologize, there was a technical issue. Could you please repeat what you said?"
const apologyAR = "أعتذر، حدث خطأ تقني. هل يمكنك إعادة ما قلته؟"

const continuationEN = "Could you say a bit more?"
const continuationAR = "هل يمكنك أن تخبرني المزيد؟"

const closingAckEN = "Thanks for your time."
const closingAckAR = "شكراً لك."

// BuildGreeting renders the opening greeting seeded with the first
// category's canonical opening question.
func BuildGreeting(language string) string {
	first, _ := OpeningQuestion(CategoryOrder[0])
	if language == "ar" {
		return fmt.Sprintf(greetingAR, first.AR)
	}
	return fmt.Sprintf(greetingEN, first.EN)
}

func CompletionMessage(language string) string {
	if language == "ar" {
		return completionAR
	}
	return completionEN
}

func ApologyMessage(language string) string {
	if language == "ar" {
		return apologyAR
	}
	return apologyEN
}

func ContinuationPrompt(language string) string {
	if language == "ar" {
		return continuationAR
	}
	return continuationEN
}

func ClosingAcknowledgment(language string) string {
	if language == "ar" {
		return closingAckAR
	}
	return closingAckEN
}

// BridgePhrase synthesizes a transition into nextQuestion, used when the
// oracle advanced but left no visible text.
func BridgePhrase(language string, nextQuestion Question) string {
	if language == "ar" {
		return "شكراً لمشاركتك. دعنا ننتقل إلى موضوع مختلف: " + nextQuestion.AR
	}
	return "Thanks for that. Let's move on to something else. " + nextQuestion.EN
}

// BuildCategoryContext renders the per-category system message for the
// dialogue oracle: index, bilingual names, description, question pools,
// next-category preview, and the advancement rules.
func BuildCategoryContext(categoryIndex int, language, roleLevel string) string {
	if categoryIndex < 0 || categoryIndex >= len(CategoryOrder) {
		return ""
	}
	cat := CategoryByKey(CategoryOrder[categoryIndex])
	set := QuestionBank[cat.Key]

	description := cat.DescriptionEN
	if language == "ar" {
		description = cat.DescriptionAR
	}

	var next string
	if nextIdx := categoryIndex + 1; nextIdx < len(CategoryOrder) {
		nextCat := CategoryByKey(CategoryOrder[nextIdx])
		nextDesc := nextCat.DescriptionEN
		if language == "ar" {
			nextDesc = nextCat.DescriptionAR
		}
		nextQ, _ := OpeningQuestion(nextCat.Key)
		next = fmt.Sprintf("The NEXT category is: **%s** (%s)\nDescription: %s\nSuggested opening question for the next category: %q",
			nextCat.NameEN, nextCat.NameAR, nextDesc, nextQ.In(language))
	} else {
		next = "This is the LAST category. After gathering enough insights, " +
			"wrap up warmly and include " + AdvanceMarker + " to complete the interview."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are now exploring category %d/%d: **%s** (%s).\n", categoryIndex+1, len(CategoryOrder), cat.NameEN, cat.NameAR)
	fmt.Fprintf(&b, "Participant role level: **%s**.\n\n%s\n\n", roleLevel, description)
	b.WriteString("Question pools for this category:\nOpening:\n")
	writeQuestions(&b, set.Opening, language)
	b.WriteString("Probing:\n")
	writeQuestions(&b, set.Probing, language)
	b.WriteString("Closing:\n")
	writeQuestions(&b, set.Closing, language)
	b.WriteString("\n")
	b.WriteString(next)
	b.WriteString("\n\nIMPORTANT: Only include " + AdvanceMarker + " at the very END of your response, and only once you have gathered sufficient rich insights for this role level. " +
		"A meaningful exchange is one where the participant shares a concrete experience, opinion, or example, not just a one-word answer. " +
		"Your transition message MUST include an opening question for the next category. Never leave the participant with nothing to respond to.")
	return b.String()
}

func writeQuestions(b *strings.Builder, questions []Question, language string) {
	for i, q := range questions {
		fmt.Fprintf(b, "  %d. %s\n", i+1, q.In(language))
	}
}

// DepthStatusMessage renders the running depth instruction for the oracle.
func DepthStatusMessage(exchanges, minDepth, maxDepth int, roleLevel string) string {
	return fmt.Sprintf("DEPTH STATUS: This is exchange #%d overall. "+
		"For this participant's role level (%s), aim for %d-%d exchanges per category. "+
		"Count ALL exchanges. Even short answers count as valid exchanges. "+
		"When the participant's answers are consistently brief, that signals they've shared what they comfortably can on this topic: respect that and advance rather than pushing for more detail. "+
		"When you've reached the depth threshold OR the participant clearly has nothing more to add, include the EXACT marker %s at the very end of your message.",
		exchanges, roleLevel, minDepth, maxDepth, AdvanceMarker)
}

// CategorizationSystemPrompt encodes the taxonomy and the output schema for
// the classification oracle.
func CategorizationSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are an expert SEAM (Socio-Economic Approach to Management) analyst. Your task is to classify diagnostic field notes into SEAM dysfunction categories.\n\n## SEAM Dysfunction Categories:\n")
	for i, c := range Categories {
		fmt.Fprintf(&b, "%d. **%s** (%s): %s\n", i+1, c.NameEN, c.NameAR, c.DescriptionEN)
	}
	b.WriteString(`
## Classification Rules:
1. Assign exactly ONE primary category (by its key) that best fits the statement.
2. Optionally assign ONE secondary category ONLY if there is clear overlap.
3. Assign 1-3 thematic tags drawn from the category tag vocabularies or similar ones.
4. Provide a confidence score (0-100) for your primary classification.
5. Do NOT interpret, judge, or prioritize. Only classify.

## Category keys:
`)
	for _, c := range Categories {
		fmt.Fprintf(&b, "- %s\n", c.Key)
	}
	b.WriteString(`
## Output Format (JSON):
{
  "primary_category": "category_key",
  "secondary_category": "category_key_or_null",
  "tags": ["tag1", "tag2"],
  "confidence": 85
}

Only output valid JSON. No explanation or commentary.`)
	return b.String()
}

const SummarySystemPrompt = `You are a senior SEAM (Socio-Economic Approach to Management) consultant. From the anonymized field notes of one diagnostic interview, produce a structured diagnostic brief in markdown with these sections:

### Key Findings
A 3-5 sentence executive summary of the most critical dysfunctions observed.

### Dysfunction Analysis
For each category where dysfunctions were identified (skip categories with no relevant notes):

#### [Category Name]
- **Severity**: High / Medium / Low (based on frequency and intensity of mentions)
- **Core issues**: Brief synthesis of the problems identified
- **Key verbatim**: 1-2 representative anonymized quotes
- **Tags**: List the relevant thematic tags

### Cross-Cutting Themes
Identify patterns or connections that span multiple categories.

### Priority Dysfunctions
Rank the top 3 dysfunctions by impact, with a one-line justification for each.

## Rules:
1. Use ONLY the anonymized field notes provided. Do not invent or assume.
2. Preserve the participant's voice by including direct (anonymized) quotes.
3. Be analytical but neutral. Describe, don't prescribe.
4. If notes are in Arabic, produce the summary in Arabic. If mixed, produce a bilingual summary.
5. Be concise. The entire summary should fit on 1-2 pages.`
