package llm

import "fmt"

// sentinelNotFound is the literal token the model is instructed to return
// when the document holds no prepared remarks for the speaker. It is the
// only in-band "not found" signal the extraction contract permits, and the
// policy layer matches it as a substring of the response.
const sentinelNotFound = "NO_PREPARED_REMARKS_FOUND"

// The prompt text is the actual contract between this system and the model.
// All four adapters build their requests from these shared templates so that
// switching providers never changes behaviour.

const extractionSystem = "You are an expert at extracting prepared remarks from business transcripts. " +
	"Extract only the formal, prepared content by the specified speaker."

const templateSystem = "You are a professional speechwriter who creates templates that capture individual speaking styles."

func customSpeechSystem(speakerName string) string {
	return fmt.Sprintf("You are a professional speechwriter who specializes in mimicking the speaking style of %s. "+
		"Write speeches that sound authentic to their voice, using their prepared remarks as style context.", speakerName)
}

func extractionPrompt(fullText, speakerName string) string {
	return fmt.Sprintf(`From the following transcript, extract the prepared remarks or main presentation content by %[1]s.
Look for content where %[1]s is:
- Giving opening statements or prepared presentations
- Reading from prepared scripts or notes
- Delivering formal remarks or speeches
- Making structured presentations (not answering questions)
IMPORTANT: Be flexible with name matching - look for:
- "%[1]s" (case-insensitive - match "john" with "John", "JOHN", etc.)
- Variations like first name only, last name only, or titles (Mr./Ms./CEO/etc.)
- Similar sounding names or abbreviated versions
- Any capitalization variations of the name
DO NOT include:
- Q&A responses or answers to questions
- Introductions by moderators or other people
- Brief interjections or casual comments
Return only the extracted prepared remarks text, without any commentary or explanation.
If no substantial prepared content is found (only Q&A or brief comments), return "%[2]s".
Transcript:
%[3]s`, speakerName, sentinelNotFound, fullText)
}

func templatePrompt(preparedRemarks, speakerName string) string {
	return fmt.Sprintf(`Assuming we are analyzing %[1]s's speech.
Review only %[1]s's prepared remarks.
Ignore all other speakers.
Summarize %[1]s's prepared remarks using clear sections with concise bullet points.
Each bullet point should be a polished, standalone sentence.
The goal is to create a summary that can stand on its own for presentation purposes and be detailed enough that an LLM could reconstruct the full speech if needed.
Prepared Remarks:
%[2]s`, speakerName, preparedRemarks)
}

func customSpeechPrompt(preparedRemarks, keyMessages, speakerName string) string {
	return fmt.Sprintf(`Review only %[1]s's prepared remarks in the earnings call transcripts provided.
Ignore all other speakers and Q&A.
You are also given a structured set of summary bullet points for %[1]s's next speech.
Rewrite these points into a full prepared speech in %[1]s's voice and style.
Maintain a professional, confident, and forward-looking tone consistent with earnings call presentations. Use natural transitions between sections (Opening & Results, Consumer & Demand Trends, Segment Highlights, Strategic Initiatives, Product Quality, Closing Remarks).
Expand each bullet point into 1-3 sentences that could be read aloud, keeping the delivery conversational yet polished.
The final output should read as a cohesive script that %[1]s could deliver verbatim.
Key Messages to Include:
%[2]s
Original Prepared Remarks for Style Context:
%[3]s`, speakerName, keyMessages, preparedRemarks)
}

// truncate cuts text at limit bytes. Used by adapters that bound the style
// context portion of the custom-speech prompt.
func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit]
}
