package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"go.uber.org/zap"
)

// serverConfig is set when the chaincode runs as an external service. With
// both fields empty the chaincode starts in the classic peer-managed mode.
type serverConfig struct {
	CCID    string `env:"CHAINCODE_ID"`
	Address string `env:"CHAINCODE_SERVER_ADDRESS"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cc, err := contractapi.NewChaincode(new(MarketplaceContract))
	if err != nil {
		logger.Fatal("create chaincode", zap.Error(err))
	}
	cc.Info.Title = "TraceMarketplaceChaincode"
	cc.Info.Version = "1.0.0"

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal("parse env", zap.Error(err))
	}

	if cfg.CCID != "" && cfg.Address != "" {
		server := &shim.ChaincodeServer{
			CCID:     cfg.CCID,
			Address:  cfg.Address,
			CC:       cc,
			TLSProps: shim.TLSProperties{Disabled: true},
		}
		logger.Info("starting chaincode server",
			zap.String("ccid", cfg.CCID),
			zap.String("address", cfg.Address),
		)
		if err := server.Start(); err != nil {
			logger.Fatal("chaincode server stopped", zap.Error(err))
		}
		return
	}

	if err := cc.Start(); err != nil {
		logger.Fatal("chaincode stopped", zap.Error(err))
	}
}
