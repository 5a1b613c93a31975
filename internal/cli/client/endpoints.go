package client

const (
	apiPrefix = "/api"

	endpointChat       = apiPrefix + "/chat"        // POST
	endpointHistory    = apiPrefix + "/history"     // GET
	endpointNewSession = apiPrefix + "/session/new" // POST
	endpointMenu       = apiPrefix + "/menu"        // GET
	endpointVendors    = apiPrefix + "/vendors"     // GET
	endpointHealth     = apiPrefix + "/health"      // GET
)
