package northpass

// The Northpass API speaks JSON:API. Every response wraps its payload in a
// data envelope of resource objects with type, id, and attributes.

type resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    attributes              `json:"attributes"`
	Relationships map[string]relationship `json:"relationships,omitempty"`
}

type attributes struct {
	Email         string `json:"email,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	DeactivatedAt string `json:"deactivated_at,omitempty"`
	Name          string `json:"name,omitempty"`
	PeopleCount   int    `json:"people_count,omitempty"`
}

type relationship struct {
	Data []resourceIdentifier `json:"data"`
}

type resourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type listResponse struct {
	Data  []resource `json:"data"`
	Links pageLinks  `json:"links"`
}

type singleResponse struct {
	Data resource `json:"data"`
}

type identifierListResponse struct {
	Data  []resourceIdentifier `json:"data"`
	Links pageLinks            `json:"links"`
}

type pageLinks struct {
	Next string `json:"next"`
}

type errorResponse struct {
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// request payloads

type createPersonRequest struct {
	Data createPersonData `json:"data"`
}

type createPersonData struct {
	Type       string                 `json:"type"`
	Attributes createPersonAttributes `json:"attributes"`
}

type createPersonAttributes struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type groupRequest struct {
	Data groupData `json:"data"`
}

type groupData struct {
	Type       string          `json:"type"`
	Attributes groupAttributes `json:"attributes"`
}

type groupAttributes struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type membershipRequest struct {
	Data []resourceIdentifier `json:"data"`
}
