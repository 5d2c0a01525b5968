package seeddata

// SeedProprietary is one proprietary product entry.
type SeedProprietary struct {
	Slug    string
	Name    string
	Website string
}

// Proprietary lists the commercial products the directory positions
// alternatives against.
var Proprietary = []SeedProprietary{
	{"trello", "Trello", "https://trello.com"},
	{"jira", "Jira", "https://www.atlassian.com/software/jira"},
	{"asana", "Asana", "https://asana.com"},
	{"notion", "Notion", "https://www.notion.so"},
	{"confluence", "Confluence", "https://www.atlassian.com/software/confluence"},
	{"slack", "Slack", "https://slack.com"},
	{"zoom", "Zoom", "https://zoom.us"},
	{"gmail", "Gmail", "https://mail.google.com"},
	{"mailchimp", "Mailchimp", "https://mailchimp.com"},
	{"salesforce", "Salesforce", "https://www.salesforce.com"},
	{"hubspot", "HubSpot", "https://www.hubspot.com"},
	{"zendesk", "Zendesk", "https://www.zendesk.com"},
	{"intercom", "Intercom", "https://www.intercom.com"},
	{"shopify", "Shopify", "https://www.shopify.com"},
	{"quickbooks", "QuickBooks", "https://quickbooks.intuit.com"},
	{"figma", "Figma", "https://www.figma.com"},
	{"photoshop", "Adobe Photoshop", "https://www.adobe.com/products/photoshop.html"},
	{"spotify", "Spotify", "https://www.spotify.com"},
	{"dropbox", "Dropbox", "https://www.dropbox.com"},
	{"google-drive", "Google Drive", "https://drive.google.com"},
	{"google-photos", "Google Photos", "https://photos.google.com"},
	{"lastpass", "LastPass", "https://www.lastpass.com"},
	{"1password", "1Password", "https://1password.com"},
	{"github", "GitHub", "https://github.com"},
	{"jenkins", "Jenkins", "https://www.jenkins.io"},
	{"datadog", "Datadog", "https://www.datadoghq.com"},
	{"firebase", "Firebase", "https://firebase.google.com"},
	{"airtable", "Airtable", "https://airtable.com"},
	{"zapier", "Zapier", "https://zapier.com"},
	{"tableau", "Tableau", "https://www.tableau.com"},
	{"google-analytics", "Google Analytics", "https://analytics.google.com"},
	{"squarespace", "Squarespace", "https://www.squarespace.com"},
	{"wordpress-com", "WordPress.com", "https://wordpress.com"},
	{"medium", "Medium", "https://medium.com"},
	{"docusign", "DocuSign", "https://www.docusign.com"},
	{"google-docs", "Google Docs", "https://docs.google.com"},
	{"calendly", "Calendly", "https://calendly.com"},
	{"typeform", "Typeform", "https://www.typeform.com"},
	{"chatgpt", "ChatGPT", "https://chat.openai.com"},
	{"pocket", "Pocket", "https://getpocket.com"},
	{"feedly", "Feedly", "https://feedly.com"},
	{"plex", "Plex", "https://www.plex.tv"},
	{"evernote", "Evernote", "https://evernote.com"},
	{"discord", "Discord", "https://discord.com"},
	{"postman", "Postman", "https://www.postman.com"},
}
