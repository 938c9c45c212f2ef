package courses

// FallbackCatalog returns the full course catalog as a literal. It is served
// whenever the database is unreachable so the dashboard always has something
// to render. Shape and ordering match the seeded tables.
func FallbackCatalog() []Module {
	return []Module{
		{
			ID:          "module-1",
			Order:       1,
			Title:       "Design Fundamentals",
			Description: "Master UI/UX design principles and tools",
			Icon:        "🎨",
			Color:       "purple",
			Lessons: []Lesson{
				{ID: "lesson-1-1", ModuleID: "module-1", Order: 1, Title: "Introduction to UI/UX Design", Description: "Learn the fundamentals of user interface and user experience design", Duration: "45m", IsFree: true},
				{ID: "lesson-1-2", ModuleID: "module-1", Order: 2, Title: "Design Principles & Color Theory", Description: "Master the core principles of visual design and color psychology", Duration: "1h 20m", IsFree: true},
				{ID: "lesson-1-3", ModuleID: "module-1", Order: 3, Title: "Figma Masterclass", Description: "Become proficient in the industry-standard design tool", Duration: "2h 30m", IsFree: true},
				{ID: "lesson-1-4", ModuleID: "module-1", Order: 4, Title: "Creating Design Systems", Description: "Build scalable and consistent design systems", Duration: "1h 45m"},
				{ID: "lesson-1-5", ModuleID: "module-1", Order: 5, Title: "Responsive Design Patterns", Description: "Design for all devices with modern responsive techniques", Duration: "1h 30m"},
				{ID: "lesson-1-6", ModuleID: "module-1", Order: 6, Title: "User Research & Testing", Description: "Validate your designs with real user feedback", Duration: "2h"},
			},
		},
		{
			ID:          "module-2",
			Order:       2,
			Title:       "Frontend Development",
			Description: "Build modern web applications with React and Next.js",
			Icon:        "💻",
			Color:       "blue",
			Lessons: []Lesson{
				{ID: "lesson-2-1", ModuleID: "module-2", Order: 1, Title: "HTML5 & Semantic Markup", Description: "Write clean, accessible, and SEO-friendly HTML", Duration: "1h 30m", IsFree: true},
				{ID: "lesson-2-2", ModuleID: "module-2", Order: 2, Title: "CSS3 & Modern Layouts", Description: "Master Flexbox, Grid, and advanced CSS techniques", Duration: "2h 45m", IsFree: true},
				{ID: "lesson-2-3", ModuleID: "module-2", Order: 3, Title: "JavaScript ES6+ Fundamentals", Description: "Learn modern JavaScript features and best practices", Duration: "3h 20m"},
				{ID: "lesson-2-4", ModuleID: "module-2", Order: 4, Title: "React.js Deep Dive", Description: "Build interactive UIs with the most popular framework", Duration: "4h 30m"},
				{ID: "lesson-2-5", ModuleID: "module-2", Order: 5, Title: "Next.js & Server Components", Description: "Create full-stack applications with Next.js 14", Duration: "3h 15m"},
				{ID: "lesson-2-6", ModuleID: "module-2", Order: 6, Title: "State Management & Performance", Description: "Optimize your apps with advanced state management", Duration: "2h 30m"},
			},
		},
		{
			ID:          "module-3",
			Order:       3,
			Title:       "Backend Development",
			Description: "Build scalable APIs and server-side applications",
			Icon:        "🚀",
			Color:       "green",
			Lessons: []Lesson{
				{ID: "lesson-3-1", ModuleID: "module-3", Order: 1, Title: "Node.js & Express.js Basics", Description: "Set up your first backend server with Node.js", Duration: "2h 15m"},
				{ID: "lesson-3-2", ModuleID: "module-3", Order: 2, Title: "RESTful API Design", Description: "Design and build professional REST APIs", Duration: "2h 30m"},
				{ID: "lesson-3-3", ModuleID: "module-3", Order: 3, Title: "Authentication & Authorization", Description: "Implement secure user authentication systems", Duration: "3h"},
				{ID: "lesson-3-4", ModuleID: "module-3", Order: 4, Title: "WebSockets & Real-time Apps", Description: "Build real-time features with WebSocket technology", Duration: "2h 45m"},
				{ID: "lesson-3-5", ModuleID: "module-3", Order: 5, Title: "Microservices Architecture", Description: "Design scalable applications with microservices", Duration: "3h 30m"},
				{ID: "lesson-3-6", ModuleID: "module-3", Order: 6, Title: "Testing & CI/CD", Description: "Ensure code quality with testing and automation", Duration: "2h 20m"},
			},
		},
		{
			ID:          "module-4",
			Order:       4,
			Title:       "Database & Deployment",
			Description: "Master data storage and application deployment",
			Icon:        "🗄️",
			Color:       "orange",
			Lessons: []Lesson{
				{ID: "lesson-4-1", ModuleID: "module-4", Order: 1, Title: "SQL & PostgreSQL Fundamentals", Description: "Master relational databases with PostgreSQL", Duration: "2h 30m"},
				{ID: "lesson-4-2", ModuleID: "module-4", Order: 2, Title: "MongoDB & NoSQL Databases", Description: "Work with document databases for flexible data", Duration: "2h 15m"},
				{ID: "lesson-4-3", ModuleID: "module-4", Order: 3, Title: "Redis & Caching Strategies", Description: "Improve performance with caching techniques", Duration: "1h 45m"},
				{ID: "lesson-4-4", ModuleID: "module-4", Order: 4, Title: "Database Design & Optimization", Description: "Design efficient database schemas and queries", Duration: "2h 30m"},
				{ID: "lesson-4-5", ModuleID: "module-4", Order: 5, Title: "Cloud Deployment (AWS/Vercel)", Description: "Deploy your applications to the cloud", Duration: "3h"},
				{ID: "lesson-4-6", ModuleID: "module-4", Order: 6, Title: "DevOps & Monitoring", Description: "Monitor and maintain production applications", Duration: "2h 45m"},
			},
		},
		{
			ID:          "module-5",
			Order:       5,
			Title:       "AI & Machine Learning",
			Description: "Integrate AI into your applications",
			Icon:        "🤖",
			Color:       "purple",
			Lessons: []Lesson{
				{ID: "lesson-5-1", ModuleID: "module-5", Order: 1, Title: "Introduction to AI/ML", Description: "Understand AI fundamentals and applications", Duration: "1h 30m"},
				{ID: "lesson-5-2", ModuleID: "module-5", Order: 2, Title: "Working with OpenAI APIs", Description: "Build AI-powered features with GPT and DALL-E", Duration: "2h"},
				{ID: "lesson-5-3", ModuleID: "module-5", Order: 3, Title: "Building AI Chatbots", Description: "Create intelligent conversational interfaces", Duration: "2h 30m"},
			},
		},
		{
			ID:          "module-6",
			Order:       6,
			Title:       "Career Development",
			Description: "Launch your career as a developer",
			Icon:        "💼",
			Color:       "green",
			Lessons: []Lesson{
				{ID: "lesson-6-1", ModuleID: "module-6", Order: 1, Title: "Building Your Portfolio", Description: "Create a portfolio that gets you hired", Duration: "1h 30m"},
				{ID: "lesson-6-2", ModuleID: "module-6", Order: 2, Title: "Resume & LinkedIn Optimization", Description: "Stand out to recruiters and hiring managers", Duration: "1h 15m"},
				{ID: "lesson-6-3", ModuleID: "module-6", Order: 3, Title: "Technical Interview Preparation", Description: "Ace your coding interviews", Duration: "3h"},
				{ID: "lesson-6-4", ModuleID: "module-6", Order: 4, Title: "Freelancing & Remote Work", Description: "Build a successful freelance career", Duration: "2h"},
				{ID: "lesson-6-5", ModuleID: "module-6", Order: 5, Title: "Networking & Personal Branding", Description: "Build your professional network", Duration: "1h 30m"},
			},
		},
	}
}

// FindFallbackLesson looks a lesson up in the embedded catalog by id.
func FindFallbackLesson(id string) (*Lesson, bool) {
	for _, m := range FallbackCatalog() {
		for i := range m.Lessons {
			if m.Lessons[i].ID == id {
				return &m.Lessons[i], true
			}
		}
	}
	return nil, false
}
