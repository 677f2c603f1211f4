package catalog

// Def is a seed quest definition. The catalog is fixed: rows are inserted
// once and never mutated, so the engine can treat quest ids as stable.
type Def struct {
	Category     Category
	Title        string
	Description  string
	Minutes      int
	XP           int
	Difficulty   int // 1-5
	Tier         int
	Why          string
	Instructions string
}

// Defs is the built-in quest table. Every category carries at least one
// difficulty-1 quest; the selection engine relies on that guarantee when
// it falls back after a morning difficulty reduction.
func Defs() []Def {
	return []Def{
		// Body Recovery
		{CategoryBodyRecovery, "Stand for 10 seconds", "Stand up beside your bed for 10 seconds", 1, 10, 1, 1,
			"Your body needs to remember it can move", "Stand up, count to 10 slowly, then sit back down. That's it."},
		{CategoryBodyRecovery, "Touch your door", "Stand and walk to touch your door", 2, 10, 1, 1,
			"Walking to the door proves your legs still work", "Get up, walk to your door, touch it, and come back."},
		{CategoryBodyRecovery, "Take 3 deep breaths", "Take three slow, deep breaths", 1, 5, 1, 1,
			"Oxygen helps your brain think", "Breathe in slowly for 4 counts, out for 4 counts. Do this 3 times."},
		{CategoryBodyRecovery, "Stretch arms up", "Stand and stretch both arms above your head", 1, 10, 1, 1,
			"Stretching wakes up your muscles", "Stand up, raise both arms high, hold for 5 seconds."},
		{CategoryBodyRecovery, "Stand at edge of bed for 1 minute", "Stand by your bed for a full minute", 2, 15, 1, 2,
			"Standing longer builds endurance", "Stand up and count to 60. Slow counts are fine."},
		{CategoryBodyRecovery, "Walk to the bathroom", "Walk to the bathroom and back", 3, 15, 2, 2,
			"Your body remembers how to move between rooms", "Walk to the bathroom and return at your own pace."},
		{CategoryBodyRecovery, "Touch your toes", "Try to touch your toes (or as close as you can)", 2, 15, 2, 2,
			"Flexibility prevents pain", "Sit or stand, reach toward your toes. Getting close counts."},
		{CategoryBodyRecovery, "Walk to the window", "Walk to your window and look outside", 3, 15, 2, 2,
			"Looking outside reminds you there's a world waiting", "Walk to the window, look out for 30 seconds."},
		{CategoryBodyRecovery, "Stand by the open door for 2 minutes", "Keep your door open and stand near it", 3, 20, 2, 3,
			"Being near the doorway is practice for going through it", "Open the door, stand near the doorway for 2 minutes."},
		{CategoryBodyRecovery, "Walk around your room", "Walk a slow lap around your room", 3, 20, 2, 3,
			"Movement anywhere counts as training", "Make one complete lap around your room. Slow is fine."},
		{CategoryBodyRecovery, "Walk for 5 minutes", "A short continuous walk, anywhere", 5, 30, 3, 4,
			"Five minutes of movement changes your whole day", "Set a timer for 5 minutes and keep moving until it rings."},
		{CategoryBodyRecovery, "Do 10 wall push-ups", "Push-ups against a wall", 3, 35, 4, 4,
			"Strength returns one rep at a time", "Face a wall at arm's length, lean in, push back. Ten times."},

		// Hygiene
		{CategoryHygiene, "Brush teeth (top row only)", "Brush just your top teeth", 2, 5, 1, 1,
			"Even partial cleaning is better than none", "Wet brush, add toothpaste, brush top teeth for 30 seconds."},
		{CategoryHygiene, "Wash face with water", "Splash water on your face", 2, 5, 1, 1,
			"Water wakes up your skin", "Use cold or warm water, splash your face 5 times."},
		{CategoryHygiene, "Apply deodorant", "Put on deodorant", 1, 5, 1, 1,
			"Small hygiene wins build confidence", "Apply deodorant to underarms."},
		{CategoryHygiene, "Wash hands with soap", "Properly wash your hands", 2, 5, 1, 1,
			"Clean hands prevent sickness", "Use soap and water, wash for 20 seconds."},
		{CategoryHygiene, "Brush full teeth", "Brush both top and bottom teeth", 3, 10, 1, 2,
			"Clean teeth reduce shame and improve health", "Brush top and bottom teeth for 2 minutes total."},
		{CategoryHygiene, "Change shirt", "Put on a clean shirt", 2, 10, 1, 2,
			"Fresh clothes change how you feel", "Pick a clean shirt and put it on."},
		{CategoryHygiene, "Look in the mirror and smile", "Look at yourself in the mirror", 2, 15, 2, 2,
			"Seeing yourself reminds you that you exist", "Stand in front of the mirror, look at your face, try to smile."},
		{CategoryHygiene, "Take a 2-minute shower", "Quick shower, just get wet", 5, 25, 3, 3,
			"Water washes away more than dirt", "Turn on the shower, get in, get wet, get out. 2 minutes max."},
		{CategoryHygiene, "Full shower with soap", "A proper wash, head to toe", 10, 35, 4, 4,
			"A full shower is a full reset", "Shower with soap and shampoo. Take your time."},

		// Eating & Drinking
		{CategoryEatingDrinking, "Drink one glass of water", "Drink a full glass of water", 2, 10, 1, 1,
			"Your body has been without water for hours", "Fill a glass with water and drink it all."},
		{CategoryEatingDrinking, "Eat one bite of food", "Just one bite of anything", 1, 10, 1, 1,
			"One bite breaks the not-eating pattern", "Pick any food, take one bite, chew, swallow."},
		{CategoryEatingDrinking, "Drink two glasses of water", "Drink two full glasses", 3, 15, 1, 2,
			"Hydration improves mood and focus", "Drink two glasses of water within 10 minutes."},
		{CategoryEatingDrinking, "Eat a full snack", "Eat something small", 5, 15, 2, 2,
			"Your brain needs fuel to function", "Eat a piece of fruit, crackers, or any small snack."},
		{CategoryEatingDrinking, "Make tea or coffee", "Prepare a hot drink", 5, 15, 2, 2,
			"Making something is an accomplishment", "Boil water, prepare tea or coffee, drink it."},
		{CategoryEatingDrinking, "Get a snack from the kitchen", "Go to the kitchen and bring back food", 5, 20, 2, 3,
			"Leaving your room to get food is brave", "Go to the kitchen, pick a snack, bring it back."},
		{CategoryEatingDrinking, "Eat while sitting (not in bed)", "Eat somewhere other than bed", 5, 20, 3, 3,
			"Separating bed from eating builds routines", "Take food to a desk or table, eat there."},
		{CategoryEatingDrinking, "Prepare a simple meal", "Make something basic to eat", 10, 30, 3, 4,
			"Cooking for yourself is self-care", "Toast, cereal, a sandwich - anything you make counts."},

		// Organization
		{CategoryOrganization, "Delete one file from desktop", "Remove one file you don't need", 2, 10, 1, 1,
			"Every file deleted reduces overwhelm", "Find one file on your desktop you don't need and delete it."},
		{CategoryOrganization, "Close one browser tab", "Close a tab you don't need", 1, 5, 1, 1,
			"Fewer tabs mean less mental clutter", "Pick one browser tab and close it."},
		{CategoryOrganization, "Write down one task on paper", "Write one thing you need to do", 2, 10, 1, 1,
			"Getting it out of your head makes it smaller", "Write one task on paper or in a notepad."},
		{CategoryOrganization, "Move one file to a folder", "Organize one single file", 2, 20, 1, 2,
			"Your future self will thank you", "Pick one file and move it into any folder."},
		{CategoryOrganization, "Close 5 browser tabs", "Clean up your browser", 3, 15, 2, 2,
			"Digital cleanup reduces anxiety", "Close 5 tabs you don't currently need."},
		{CategoryOrganization, "Organize 5 files on desktop", "Clean up multiple files", 5, 30, 2, 3,
			"Visible progress feels good", "Move or delete 5 files from your desktop."},
		{CategoryOrganization, "Create a folder structure", "Make folders for different types of files", 10, 40, 3, 4,
			"Structure creates clarity", "Create 3-5 folders with clear names (Projects, Music, Documents)."},

		// Social Recovery
		{CategorySocialRecovery, "Send one emoji to someone", "One emoji to a friend or family member", 1, 10, 1, 1,
			"Any contact counts as connection", "Open messages, send anyone a single emoji."},
		{CategorySocialRecovery, "Stay in room with door open for 5 min", "Keep the door open, stay inside", 5, 15, 2, 1,
			"Being near people, even silently, rebuilds social tolerance", "Open your door, stay in the room for 5 minutes."},
		{CategorySocialRecovery, "Say good morning to someone at home", "Greet one person once", 1, 20, 3, 2,
			"One word breaks the silence", "When you see someone at home, just say morning or hi."},
		{CategorySocialRecovery, "Listen to someone talk for 30 seconds", "Just listen, no need to respond", 1, 20, 2, 2,
			"Listening is a skill you can rebuild", "When someone talks, listen for 30 seconds without pressure to reply."},
		{CategorySocialRecovery, "Make one second of eye contact", "Brief eye contact with someone", 1, 25, 3, 3,
			"Eye contact is practice for the world", "When you see someone, look at their eyes for one second."},
		{CategorySocialRecovery, "Sit in the common area for 10 minutes", "Be present where others are", 10, 30, 3, 3,
			"Presence builds tolerance", "Sit in the living room or kitchen for 10 minutes."},
		{CategorySocialRecovery, "Ask someone one question", "Start a small conversation", 2, 30, 3, 4,
			"Asking questions shows you're coming back", "Ask something simple - about their day, the weather, anything."},

		// Financial Survival
		{CategoryFinancial, "Find your bank app", "Locate the app, don't open it yet", 1, 5, 1, 1,
			"Knowing where it lives is the first step", "Find the banking app on your phone. Looking at the icon counts."},
		{CategoryFinancial, "Open bank app (just look)", "Check your balance once", 2, 10, 2, 1,
			"Knowing your situation is better than avoiding it", "Open the banking app, look at the balance, close the app."},
		{CategoryFinancial, "Write down one debt amount", "Document one thing you owe", 3, 15, 2, 1,
			"Written problems feel more manageable", "Write down one debt with the amount owed."},
		{CategoryFinancial, "Find one item to sell", "Identify something sellable", 5, 20, 2, 2,
			"Small sales add up", "Look around your room for one item you could sell."},
		{CategoryFinancial, "Take a photo of one item to sell", "Photograph something sellable", 5, 25, 2, 3,
			"Photos are preparation for action", "Take a clear photo of one item you could sell."},
		{CategoryFinancial, "Track spending for one day", "Write down what you spend", 5, 20, 2, 2,
			"Awareness is the first step to control", "Write down everything spent today."},
		{CategoryFinancial, "List one item for sale online", "Actually post something", 15, 50, 3, 4,
			"Listed items can sell while you sleep", "Create a listing with photo, price, description."},

		// Academic Exit
		{CategoryAcademic, "Find one course file", "Locate one study file on your computer", 3, 10, 1, 1,
			"Finding it is the first step", "Search your computer for one course PDF or document."},
		{CategoryAcademic, "Open the file and read the title", "Just open it and look", 2, 20, 2, 2,
			"Opening the file proves it's not scary", "Open one course file, read the title, close it."},
		{CategoryAcademic, "Read one sentence", "Read just one sentence of material", 2, 25, 2, 3,
			"One sentence is progress", "Open the file, read one full sentence, close it."},
		{CategoryAcademic, "Save the file somewhere visible", "Organize one study file", 2, 15, 2, 2,
			"Accessible files reduce overwhelm", "Move one course file to your desktop for easy access."},
		{CategoryAcademic, "Read one paragraph", "Read a full paragraph of material", 5, 35, 3, 5,
			"Paragraphs contain complete thoughts", "Open the material, read one paragraph, take a break."},
		{CategoryAcademic, "Write one sentence about the material", "Engage with what you read", 5, 40, 3, 5,
			"Writing helps process information", "Read something, then write one sentence about it."},

		// Creative Reawakening
		{CategoryCreative, "Hum a melody", "Hum any tune", 1, 10, 1, 1,
			"Music lives inside you still", "Hum any song or melody for 10 seconds."},
		{CategoryCreative, "Draw one line", "Make one mark on paper", 1, 10, 1, 1,
			"Creativity starts with one mark", "Get paper and pen, draw one line. Any line."},
		{CategoryCreative, "Write one word about how you feel", "Express yourself", 1, 10, 1, 1,
			"Naming feelings reduces their power", "Write down one word describing your current emotion."},
		{CategoryCreative, "Make one sound", "Beatbox, whistle, or sing one note", 1, 10, 1, 1,
			"One sound proves your voice still works", "Make any musical sound once. Just once."},
		{CategoryCreative, "Record 5 seconds of anything", "Record yourself creating", 2, 20, 2, 2,
			"Recording it makes it real", "Use your phone, record 5 seconds of any sound you make."},
		{CategoryCreative, "Watch one performance video", "Study someone you admire", 5, 15, 2, 2,
			"Watching champions reminds you what's possible", "Watch one video of a performer you like."},
		{CategoryCreative, "Practice for 30 seconds", "A short continuous practice burst", 3, 30, 2, 3,
			"Longer practice rebuilds skill", "Pick your craft and practice it for 30 seconds straight."},
		{CategoryCreative, "Learn one new technique", "Try something new for 10 minutes", 10, 40, 3, 4,
			"New skills prove you're growing", "Pick one new technique and practice it for 10 minutes."},

		// Crypto & AI
		{CategoryCryptoAI, "Read one tech headline", "A single headline, nothing more", 1, 5, 1, 1,
			"Staying lightly informed beats doomscrolling", "Read one headline about crypto or AI, then stop."},
		{CategoryCryptoAI, "Check prices with a 5-minute timer", "Limited checking only", 5, 15, 2, 2,
			"Limits prevent obsession", "Check for 5 minutes max, then close every tab."},
		{CategoryCryptoAI, "Write down one pattern you notice", "Document observations", 5, 20, 2, 2,
			"Patterns you track teach you more than endless watching", "Write one thing you notice about the market."},
		{CategoryCryptoAI, "Watch one 3-minute AI tutorial", "Learn something new", 5, 20, 2, 2,
			"Learning AI skills creates real value", "Watch one short AI tutorial video."},
		{CategoryCryptoAI, "Write one line of code", "Write actual code", 5, 25, 2, 2,
			"Building creates more wealth than hoping", "Open an editor, write one line of code, run it."},
		{CategoryCryptoAI, "Close trading apps for 1 hour", "Practice control", 60, 35, 3, 3,
			"Discipline builds wealth more than watching", "Close every trading app and keep them closed for an hour."},

		// Fortnite Integration
		{CategoryFortnite, "Stretch before playing", "Warm up your body", 2, 10, 1, 1,
			"Your body performs better when warmed up", "Do 5 quick stretches before you start playing."},
		{CategoryFortnite, "Watch one 2-minute pro tip video", "Learn from the pros", 3, 15, 2, 1,
			"Pros were beginners once too", "Watch one short tips video."},
		{CategoryFortnite, "Play one match with focus", "No multitasking during the match", 20, 15, 2, 2,
			"Focused practice improves skill", "Play one match. No phone, no price-checking."},
		{CategoryFortnite, "Practice one move in creative for 5 min", "A skill-building session", 5, 20, 2, 2,
			"Practice makes you better", "Go to creative mode, practice one building technique."},
		{CategoryFortnite, "Take a break after each match", "Rest between matches", 5, 20, 2, 2,
			"Breaks prevent burnout", "After each match, stand up and walk for 2 minutes."},
		{CategoryFortnite, "Play only 3 matches today", "Practice restraint", 60, 30, 3, 3,
			"Quality over quantity", "Play exactly 3 matches, then close the game."},
	}
}
