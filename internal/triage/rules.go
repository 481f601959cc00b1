package triage

// emergencyPhrases are checked before the general table. Order here does not
// matter; any hit yields the same fixed response.
var emergencyPhrases = []string{
	"chest pain",
	"difficulty breathing",
	"emergency",
	"severe pain",
	"bleeding",
}

const emergencyResponse = "This sounds like a medical emergency. Please call 102 immediately or visit " +
	"the nearest hospital. Do not rely on this chatbot for emergency situations."

const defaultResponse = "I understand you're asking about a health concern. While I can provide general " +
	"guidance, I recommend consulting with a qualified healthcare professional for personalized advice. " +
	"You can book an appointment with a doctor through our platform."

// guidanceRules is the general table, scanned first-match-wins in this order.
var guidanceRules = []Rule{
	{
		Trigger:  "fever",
		Response: "For fever, you can take paracetamol 500mg and rest. If fever persists above 102°F for more than 2 days, please consult a doctor.",
	},
	{
		Trigger:  "headache",
		Response: "For headaches, try rest in a dark room, stay hydrated, and consider paracetamol. If severe or persistent, consult a doctor.",
	},
	{
		Trigger:  "cough",
		Response: "For dry cough, try honey and warm water. For productive cough, stay hydrated. If cough persists more than a week, see a doctor.",
	},
	{
		Trigger:  "stomach",
		Response: "For stomach pain, avoid spicy foods, drink plenty of water, and rest. If severe pain or vomiting occurs, seek medical attention.",
	},
	{
		Trigger:  "cold",
		Response: "For common cold, rest, drink fluids, and use steam inhalation. Symptoms usually resolve in 7-10 days.",
	},
	{
		Trigger:  "chest pain",
		Response: "Chest pain can be serious. Please seek immediate medical attention or call emergency services.",
	},
	{
		Trigger:  "difficulty breathing",
		Response: "Difficulty breathing requires immediate medical attention. Please visit the nearest hospital or call emergency services.",
	},
	{
		Trigger:  "hello",
		Response: "Hello! I'm your health assistant. You can ask me about common symptoms, first aid, or general health questions. How can I help you today?",
	},
	{
		Trigger:  "help",
		Response: "I can help you with:\n• Common symptoms (fever, headache, cough, etc.)\n• First aid advice\n• When to see a doctor\n• General health tips\n\nWhat would you like to know?",
	},
	{
		Trigger:  "emergency",
		Response: "For medical emergencies, please call 102 (India) or visit the nearest hospital immediately. This chatbot is for general guidance only.",
	},
}
