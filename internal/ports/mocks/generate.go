//go:generate mockgen -source=../order_api.go      -destination=./mock_order_api.go      -package=mocks
//go:generate mockgen -source=../directory.go      -destination=./mock_directory.go      -package=mocks
//go:generate mockgen -source=../cart_storage.go   -destination=./mock_cart_storage.go   -package=mocks
//go:generate mockgen -source=../notifier.go       -destination=./mock_notifier.go       -package=mocks
//go:generate mockgen -source=../cart_validator.go -destination=./mock_cart_validator.go -package=mocks

package mocks
