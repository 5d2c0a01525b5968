package matcher

// DefaultCategories is the fallback assignment when no rule wins.
// Resolved against the live label set like any rule's categories.
var DefaultCategories = []string{"developer-tools", "productivity", "self-hosted"}

// DefaultRules is the built-in keyword table consulted by the seeder.
// Order is a priority list: rules keyed to a specific product come
// before rules keyed to a generic domain, so a candidate mentioning
// both is classified by the product rule.
var DefaultRules = []Rule{
	// Product-specific rules first.
	{
		Keywords:   []string{"trello", "kanban"},
		Categories: []string{"project-management", "task-management", "productivity"},
	},
	{
		Keywords:   []string{"jira", "issue tracking", "issue tracker", "bug tracker"},
		Categories: []string{"project-management", "issue-tracking", "developer-tools"},
	},
	{
		Keywords:   []string{"asana", "monday.com", "clickup", "basecamp"},
		Categories: []string{"project-management", "task-management", "collaboration"},
	},
	{
		Keywords:   []string{"notion", "confluence", "evernote", "onenote", "note-taking", "note taking"},
		Categories: []string{"note-taking", "knowledge-management", "productivity"},
	},
	{
		Keywords:   []string{"obsidian", "roam research", "knowledge base", "wiki"},
		Categories: []string{"knowledge-management", "note-taking", "documentation"},
	},
	{
		Keywords:   []string{"slack", "microsoft teams", "discord", "team chat"},
		Categories: []string{"communication", "team-chat", "collaboration"},
	},
	{
		Keywords:   []string{"zoom", "google meet", "video conferencing", "video call"},
		Categories: []string{"communication", "video-conferencing", "collaboration"},
	},
	{
		Keywords:   []string{"gmail", "outlook", "email client", "webmail"},
		Categories: []string{"email", "communication", "productivity"},
	},
	{
		Keywords:   []string{"mailchimp", "sendgrid", "email marketing", "newsletter"},
		Categories: []string{"email", "marketing", "automation"},
	},
	{
		Keywords:   []string{"salesforce", "hubspot", "pipedrive", "crm"},
		Categories: []string{"crm", "sales", "business"},
	},
	{
		Keywords:   []string{"zendesk", "intercom", "freshdesk", "help desk", "helpdesk", "customer support"},
		Categories: []string{"customer-support", "communication", "business"},
	},
	{
		Keywords:   []string{"shopify", "woocommerce", "magento", "e-commerce", "ecommerce", "online store"},
		Categories: []string{"e-commerce", "business", "website-builder"},
	},
	{
		Keywords:   []string{"stripe", "paypal", "payment processing", "invoicing", "billing"},
		Categories: []string{"finance", "payments", "business"},
	},
	{
		Keywords:   []string{"quickbooks", "xero", "accounting", "bookkeeping"},
		Categories: []string{"finance", "accounting", "business"},
	},
	{
		Keywords:   []string{"mint", "ynab", "personal finance", "budgeting", "expense track"},
		Categories: []string{"finance", "personal-finance", "productivity"},
	},
	{
		Keywords:   []string{"figma", "sketch", "adobe xd", "design tool", "prototyping"},
		Categories: []string{"design", "prototyping", "collaboration"},
	},
	{
		Keywords:   []string{"photoshop", "illustrator", "image editor", "photo editing", "vector graphics"},
		Categories: []string{"design", "image-editing", "creative-tools"},
	},
	{
		Keywords:   []string{"premiere", "final cut", "video editing", "video editor"},
		Categories: []string{"video", "creative-tools", "media"},
	},
	{
		Keywords:   []string{"spotify", "music streaming", "music player", "audio player"},
		Categories: []string{"media", "music", "entertainment"},
	},
	{
		Keywords:   []string{"youtube", "twitch", "video streaming", "live streaming"},
		Categories: []string{"media", "video", "streaming"},
	},
	{
		Keywords:   []string{"dropbox", "google drive", "onedrive", "file sync", "file sharing", "cloud storage"},
		Categories: []string{"file-storage", "file-sharing", "self-hosted"},
	},
	{
		Keywords:   []string{"google photos", "photo management", "photo library", "photo gallery"},
		Categories: []string{"media", "photos", "self-hosted"},
	},
	{
		Keywords:   []string{"lastpass", "1password", "dashlane", "password manager"},
		Categories: []string{"security", "password-management", "privacy"},
	},
	{
		Keywords:   []string{"vpn", "wireguard", "tailscale", "zero trust"},
		Categories: []string{"security", "networking", "privacy"},
	},
	{
		Keywords:   []string{"okta", "auth0", "single sign-on", "sso", "identity provider", "authentication"},
		Categories: []string{"security", "identity", "developer-tools"},
	},
	{
		Keywords:   []string{"github", "gitlab", "bitbucket", "code hosting", "git hosting"},
		Categories: []string{"developer-tools", "version-control", "collaboration"},
	},
	{
		Keywords:   []string{"jenkins", "circleci", "travis", "continuous integration", "ci/cd", "build pipeline"},
		Categories: []string{"developer-tools", "ci-cd", "automation"},
	},
	{
		Keywords:   []string{"docker hub", "kubernetes", "container orchestration", "paas", "deployment platform"},
		Categories: []string{"developer-tools", "devops", "infrastructure"},
	},
	{
		Keywords:   []string{"datadog", "new relic", "grafana", "observability", "monitoring", "apm"},
		Categories: []string{"monitoring", "devops", "infrastructure"},
	},
	{
		Keywords:   []string{"sentry", "error tracking", "crash reporting"},
		Categories: []string{"monitoring", "developer-tools", "devops"},
	},
	{
		Keywords:   []string{"postman", "insomnia", "api client", "api testing"},
		Categories: []string{"developer-tools", "api-tools", "testing"},
	},
	{
		Keywords:   []string{"firebase", "supabase", "backend as a service", "baas", "realtime database"},
		Categories: []string{"developer-tools", "backend", "database"},
	},
	{
		Keywords:   []string{"mongodb atlas", "dynamodb", "postgres", "mysql", "database"},
		Categories: []string{"database", "infrastructure", "developer-tools"},
	},
	{
		Keywords:   []string{"airtable", "spreadsheet", "excel", "google sheets"},
		Categories: []string{"spreadsheets", "no-code", "productivity"},
	},
	{
		Keywords:   []string{"zapier", "ifttt", "workflow automation", "no-code automation"},
		Categories: []string{"automation", "no-code", "integrations"},
	},
	{
		Keywords:   []string{"retool", "internal tools", "low-code", "app builder"},
		Categories: []string{"no-code", "developer-tools", "business"},
	},
	{
		Keywords:   []string{"tableau", "power bi", "looker", "business intelligence", "data visualization", "dashboards"},
		Categories: []string{"analytics", "business-intelligence", "data"},
	},
	{
		Keywords:   []string{"google analytics", "mixpanel", "amplitude", "web analytics", "product analytics"},
		Categories: []string{"analytics", "marketing", "privacy"},
	},
	{
		Keywords:   []string{"hootsuite", "buffer", "social media management", "social media scheduling"},
		Categories: []string{"marketing", "social-media", "automation"},
	},
	{
		Keywords:   []string{"wordpress.com", "squarespace", "wix", "website builder", "site builder"},
		Categories: []string{"website-builder", "cms", "no-code"},
	},
	{
		Keywords:   []string{"contentful", "headless cms", "content management"},
		Categories: []string{"cms", "developer-tools", "content"},
	},
	{
		Keywords:   []string{"ghost", "medium", "substack", "blogging", "publishing platform"},
		Categories: []string{"content", "cms", "website-builder"},
	},
	{
		Keywords:   []string{"docusign", "e-signature", "electronic signature", "document signing"},
		Categories: []string{"documents", "business", "legal"},
	},
	{
		Keywords:   []string{"google docs", "office 365", "word processor", "document editor", "office suite"},
		Categories: []string{"documents", "productivity", "collaboration"},
	},
	{
		Keywords:   []string{"calendly", "scheduling", "appointment booking", "calendar booking"},
		Categories: []string{"scheduling", "productivity", "business"},
	},
	{
		Keywords:   []string{"typeform", "surveymonkey", "google forms", "form builder", "surveys"},
		Categories: []string{"forms", "no-code", "business"},
	},
	{
		Keywords:   []string{"chatgpt", "openai", "llm", "ai assistant", "chatbot"},
		Categories: []string{"ai", "productivity", "developer-tools"},
	},
	{
		Keywords:   []string{"midjourney", "dall-e", "image generation", "text to image"},
		Categories: []string{"ai", "creative-tools", "design"},
	},
	{
		Keywords:   []string{"duolingo", "language learning", "flashcards", "spaced repetition"},
		Categories: []string{"education", "learning", "productivity"},
	},
	{
		Keywords:   []string{"strava", "fitness tracking", "workout", "health tracking"},
		Categories: []string{"health", "fitness", "lifestyle"},
	},
	{
		Keywords:   []string{"pocket", "instapaper", "read later", "bookmark"},
		Categories: []string{"bookmarks", "productivity", "content"},
	},
	{
		Keywords:   []string{"feedly", "rss reader", "news aggregator", "feed reader"},
		Categories: []string{"content", "news", "self-hosted"},
	},
	{
		Keywords:   []string{"home assistant", "smart home", "home automation", "iot"},
		Categories: []string{"home-automation", "self-hosted", "automation"},
	},
	{
		Keywords:   []string{"plex", "media server", "home media", "media library"},
		Categories: []string{"media", "self-hosted", "entertainment"},
	},
	{
		Keywords:   []string{"uptime", "status page", "incident management", "on-call"},
		Categories: []string{"monitoring", "devops", "business"},
	},

	// Generic domain rules last.
	{
		Keywords:   []string{"project", "task", "todo", "to-do"},
		Categories: []string{"project-management", "task-management", "productivity"},
	},
	{
		Keywords:   []string{"chat", "messag"},
		Categories: []string{"communication", "team-chat", "collaboration"},
	},
	{
		Keywords:   []string{"secur", "encrypt", "privacy"},
		Categories: []string{"security", "privacy", "self-hosted"},
	},
	{
		Keywords:   []string{"market", "seo", "campaign"},
		Categories: []string{"marketing", "business", "analytics"},
	},
	{
		Keywords:   []string{"developer", "programming", "code"},
		Categories: []string{"developer-tools", "productivity", "open-source"},
	},
	{
		Keywords:   []string{"data", "analytic", "metric"},
		Categories: []string{"analytics", "data", "business-intelligence"},
	},
}
