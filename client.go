package storefront

// Client is an umbrella for the specialized storefront API clients.
type Client interface {
	Auth() AuthClient
	Ingredients() IngredientsClient
	Orders() OrdersClient
	Feed() FeedClient
}

type client struct {
	authClient        AuthClient
	ingredientsClient IngredientsClient
	ordersClient      OrdersClient
	feedClient        FeedClient
}

// NewClient returns an umbrella client for the storefront API. apiAddress is
// the REST base address (e.g. https://example.com/api); feedAddress is the
// websocket base address of the live order feed (e.g. wss://example.com/orders).
func NewClient(apiAddress, feedAddress string, allowInsecure bool) Client {
	return &client{
		authClient:        NewAuthClient(apiAddress, allowInsecure),
		ingredientsClient: NewIngredientsClient(apiAddress, allowInsecure),
		ordersClient:      NewOrdersClient(apiAddress, allowInsecure),
		feedClient:        NewFeedClient(feedAddress, allowInsecure),
	}
}

func (c *client) Auth() AuthClient {
	return c.authClient
}

func (c *client) Ingredients() IngredientsClient {
	return c.ingredientsClient
}

func (c *client) Orders() OrdersClient {
	return c.ordersClient
}

func (c *client) Feed() FeedClient {
	return c.feedClient
}
